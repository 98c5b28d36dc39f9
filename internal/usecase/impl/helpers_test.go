package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"organico/config"
	"organico/internal/domain/repository"
	mockRepo "organico/internal/mocks/repository"
	mockSvc "organico/internal/mocks/service"
	"organico/internal/usecase"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Listing: &config.ListingConfig{
			DefaultPageSize: 20,
			MaxPageSize:     100,
			MaxMapRadiusKm:  50,
		},
	}
}

// stubTxManager runs the transactional function against a fixed factory and
// propagates its error, mirroring the real manager minus the SQL transaction.
type stubTxManager struct {
	factory repository.RepositoryFactory
}

func (s *stubTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(s.factory)
}

// stubRepoFactory hands out the test's repository mocks as transaction-bound repos.
type stubRepoFactory struct {
	locationRepo repository.LocationRepository
	producerRepo repository.ProducerRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
	favoriteRepo repository.FavoriteRepository
}

func (s *stubRepoFactory) LocationRepo() repository.LocationRepository { return s.locationRepo }
func (s *stubRepoFactory) ProducerRepo() repository.ProducerRepository { return s.producerRepo }
func (s *stubRepoFactory) ProductRepo() repository.ProductRepository   { return s.productRepo }
func (s *stubRepoFactory) UserRepo() repository.UserRepository         { return s.userRepo }
func (s *stubRepoFactory) FavoriteRepo() repository.FavoriteRepository { return s.favoriteRepo }

// locationServiceFixtures holds all test dependencies for location service tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
	producerRepo *mockRepo.MockProducerRepository
	productRepo  *mockRepo.MockProductRepository
	qrService    *mockSvc.MockQRCodeService
	fileStorage  *mockSvc.MockFileStorage
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	producerRepo := mockRepo.NewMockProducerRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	qrService := mockSvc.NewMockQRCodeService(t)
	fileStorage := mockSvc.NewMockFileStorage(t)

	service := NewLocationService(LocationServiceParams{
		TxManager:    &stubTxManager{factory: &stubRepoFactory{locationRepo: locationRepo}},
		LocationRepo: locationRepo,
		ProducerRepo: producerRepo,
		ProductRepo:  productRepo,
		QRService:    qrService,
		FileStorage:  fileStorage,
		Config:       newTestConfig(),
		Logger:       newDiscardLogger(),
	})

	return locationServiceFixtures{
		service:      service,
		locationRepo: locationRepo,
		producerRepo: producerRepo,
		productRepo:  productRepo,
		qrService:    qrService,
		fileStorage:  fileStorage,
	}
}

// favoriteServiceFixtures holds all test dependencies for favorite service tests.
type favoriteServiceFixtures struct {
	service      usecase.FavoriteUsecase
	favoriteRepo *mockRepo.MockFavoriteRepository
	locationRepo *mockRepo.MockLocationRepository
}

func createTestFavoriteService(t *testing.T) favoriteServiceFixtures {
	favoriteRepo := mockRepo.NewMockFavoriteRepository(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)

	service := NewFavoriteService(FavoriteServiceParams{
		FavoriteRepo: favoriteRepo,
		LocationRepo: locationRepo,
		Logger:       newDiscardLogger(),
	})

	return favoriteServiceFixtures{
		service:      service,
		favoriteRepo: favoriteRepo,
		locationRepo: locationRepo,
	}
}

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	cfg := newTestConfig()
	cfg.SecretKey.Access = "access-secret"
	cfg.SecretKey.Refresh = "refresh-secret"

	service := NewUserService(UserServiceParams{
		TxManager:    &stubTxManager{factory: &stubRepoFactory{userRepo: userRepo}},
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

// producerServiceFixtures holds all test dependencies for producer service tests.
type producerServiceFixtures struct {
	service      usecase.ProducerUsecase
	producerRepo *mockRepo.MockProducerRepository
	userRepo     *mockRepo.MockUserRepository
}

func createTestProducerService(t *testing.T) producerServiceFixtures {
	producerRepo := mockRepo.NewMockProducerRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	service := NewProducerService(ProducerServiceParams{
		ProducerRepo: producerRepo,
		UserRepo:     userRepo,
		Logger:       newDiscardLogger(),
	})

	return producerServiceFixtures{
		service:      service,
		producerRepo: producerRepo,
		userRepo:     userRepo,
	}
}

// catalogServiceFixtures holds all test dependencies for catalog service tests.
type catalogServiceFixtures struct {
	service     usecase.CatalogUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)

	service := NewCatalogService(CatalogServiceParams{
		ProductRepo: productRepo,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return catalogServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}
