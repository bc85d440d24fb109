package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/m04kA/SMC-TourBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-TourBookingService/internal/infra/storage/booking"
	packageRepo "github.com/m04kA/SMC-TourBookingService/internal/infra/storage/tourpackage"
	"github.com/m04kA/SMC-TourBookingService/pkg/txmanager"
)

// Store in-memory хранилище пакетов и бронирований для тестов use case.
// Повторяет контракты репозиториев из internal/infra/storage, включая их ошибки.
type Store struct {
	mu            sync.Mutex
	packages      map[int64]domain.TourPackage
	bookings      map[int64]domain.Booking
	nextPackageID int64
	nextBookingID int64
	clock         time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		packages: make(map[int64]domain.TourPackage),
		bookings: make(map[int64]domain.Booking),
		clock:    time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

// AddPackage кладет пакет в хранилище и возвращает его ID
func (s *Store) AddPackage(pkg domain.TourPackage) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPackageID++
	pkg.ID = s.nextPackageID
	s.packages[pkg.ID] = clonePackage(pkg)
	return pkg.ID
}

// UpdatePackage изменяет пакет напрямую, минуя учет мест
func (s *Store) UpdatePackage(id int64, fn func(pkg *domain.TourPackage)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pkg, ok := s.packages[id]
	if !ok {
		return
	}
	fn(&pkg)
	s.packages[id] = clonePackage(pkg)
}

// Package возвращает текущее состояние пакета
func (s *Store) Package(id int64) (domain.TourPackage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pkg, ok := s.packages[id]
	return clonePackage(pkg), ok
}

// Booking возвращает текущее состояние бронирования
func (s *Store) Booking(id int64) (domain.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.bookings[id]
	return b, ok
}

// BookingsCount количество бронирований в хранилище
func (s *Store) BookingsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.bookings)
}

// BookedPeople сумма number_of_people по бронированиям пакета
func (s *Store) BookedPeople(packageID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, b := range s.bookings {
		if b.TourPackageID == packageID {
			total += b.NumberOfPeople
		}
	}
	return total
}

func (s *Store) now() time.Time {
	s.clock = s.clock.Add(time.Minute)
	return s.clock
}

type snapshot struct {
	packages      map[int64]domain.TourPackage
	bookings      map[int64]domain.Booking
	nextPackageID int64
	nextBookingID int64
}

func (s *Store) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{
		packages:      make(map[int64]domain.TourPackage, len(s.packages)),
		bookings:      make(map[int64]domain.Booking, len(s.bookings)),
		nextPackageID: s.nextPackageID,
		nextBookingID: s.nextBookingID,
	}
	for id, pkg := range s.packages {
		snap.packages[id] = clonePackage(pkg)
	}
	for id, b := range s.bookings {
		snap.bookings[id] = b
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.packages = snap.packages
	s.bookings = snap.bookings
	s.nextPackageID = snap.nextPackageID
	s.nextBookingID = snap.nextBookingID
}

// Packages репозиторий тур-пакетов поверх хранилища
func (s *Store) Packages() *PackageRepository {
	return &PackageRepository{store: s}
}

// Bookings репозиторий бронирований поверх хранилища
func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

// PackageRepository in-memory реализация репозитория тур-пакетов
type PackageRepository struct {
	store *Store
}

func (r *PackageRepository) GetByID(_ context.Context, id int64) (*domain.TourPackage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	pkg, ok := r.store.packages[id]
	if !ok {
		return nil, packageRepo.ErrPackageNotFound
	}
	out := clonePackage(pkg)
	return &out, nil
}

func (r *PackageRepository) Create(_ context.Context, pkg *domain.TourPackage) (*domain.TourPackage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.nextPackageID++
	pkg.ID = r.store.nextPackageID
	pkg.CreatedAt = r.store.now()
	pkg.UpdatedAt = pkg.CreatedAt
	r.store.packages[pkg.ID] = clonePackage(*pkg)

	out := clonePackage(*pkg)
	return &out, nil
}

// List новые пакеты сначала, с количеством бронирований
func (r *PackageRepository) List(_ context.Context, filter domain.TourPackagesFilter) ([]*domain.TourPackage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	counts := make(map[int64]int)
	for _, b := range r.store.bookings {
		counts[b.TourPackageID]++
	}

	result := make([]*domain.TourPackage, 0)
	for _, pkg := range r.store.packages {
		if filter.Status != nil && pkg.Status != *filter.Status {
			continue
		}
		if filter.OnlyAvailable && (!pkg.IsActive() || !pkg.HasAvailableSlots()) {
			continue
		}
		out := clonePackage(pkg)
		out.BookingsCount = counts[pkg.ID]
		result = append(result, &out)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if filter.Limit > 0 && uint64(len(result)) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *PackageRepository) Update(_ context.Context, pkg *domain.TourPackage) (*domain.TourPackage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.packages[pkg.ID]
	if !ok {
		return nil, packageRepo.ErrPackageNotFound
	}

	updated := clonePackage(*pkg)
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = r.store.now()
	r.store.packages[pkg.ID] = updated

	out := clonePackage(updated)
	return &out, nil
}

// Delete удаляет пакет и каскадно его бронирования
func (r *PackageRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.packages[id]; !ok {
		return packageRepo.ErrPackageNotFound
	}
	delete(r.store.packages, id)
	for bookingID, b := range r.store.bookings {
		if b.TourPackageID == id {
			delete(r.store.bookings, bookingID)
		}
	}
	return nil
}

// ReserveSlots условное списание мест, как UPDATE ... WHERE available_slots >= count
func (r *PackageRepository) ReserveSlots(_ context.Context, id int64, count int) (*domain.TourPackage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	pkg, ok := r.store.packages[id]
	if !ok {
		return nil, packageRepo.ErrPackageNotFound
	}
	if pkg.AvailableSlots < count {
		return nil, packageRepo.ErrInsufficientSlots
	}

	pkg.AvailableSlots -= count
	pkg.UpdatedAt = r.store.now()
	r.store.packages[id] = pkg

	out := clonePackage(pkg)
	return &out, nil
}

// ReleaseSlots возврат мест с ограничением сверху max_capacity
func (r *PackageRepository) ReleaseSlots(_ context.Context, id int64, count int) (*domain.TourPackage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	pkg, ok := r.store.packages[id]
	if !ok {
		return nil, packageRepo.ErrPackageNotFound
	}

	pkg.AvailableSlots += count
	if pkg.AvailableSlots > pkg.MaxCapacity {
		pkg.AvailableSlots = pkg.MaxCapacity
	}
	pkg.UpdatedAt = r.store.now()
	r.store.packages[id] = pkg

	out := clonePackage(pkg)
	return &out, nil
}

// BookingRepository in-memory реализация репозитория бронирований
type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.packages[booking.TourPackageID]; !ok {
		return nil, bookingRepo.ErrExecQuery
	}

	r.store.nextBookingID++
	booking.ID = r.store.nextBookingID
	booking.CreatedAt = r.store.now()
	booking.UpdatedAt = booking.CreatedAt
	r.store.bookings[booking.ID] = *booking

	out := *booking
	return &out, nil
}

func (r *BookingRepository) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	b, ok := r.store.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepository) List(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.store.bookings {
		if filter.AgentID != nil && b.AgentID != *filter.AgentID {
			continue
		}
		if filter.TourPackageID != nil && b.TourPackageID != *filter.TourPackageID {
			continue
		}
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if !inDateRange(b.CreatedAt, filter.FromDate, filter.ToDate) {
			continue
		}
		b := b
		result = append(result, &b)
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	if filter.Limit > 0 && uint64(len(result)) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r *BookingRepository) Update(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	existing, ok := r.store.bookings[booking.ID]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}

	updated := *booking
	updated.TourPackageID = existing.TourPackageID
	updated.AgentID = existing.AgentID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = r.store.now()
	r.store.bookings[booking.ID] = updated

	return &updated, nil
}

func (r *BookingRepository) Delete(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.bookings[id]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	delete(r.store.bookings, id)
	return nil
}

// TxManager сериализует транзакции и откатывает хранилище при ошибке.
// Conflicts задает, сколько первых вызовов завершатся txmanager.ErrConflict без выполнения fn.
type TxManager struct {
	store *Store

	mu        sync.Mutex
	Conflicts int
	Calls     int
}

// NewTxManager создает менеджер транзакций поверх хранилища
func NewTxManager(store *Store) *TxManager {
	return &TxManager{store: store}
}

func (m *TxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls++
	if m.Conflicts > 0 {
		m.Conflicts--
		return txmanager.ErrConflict
	}

	snap := m.store.snapshot()
	if err := fn(ctx); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

// inDateRange сравнивает только даты, как DATE(created_at) в SQL
func inDateRange(createdAt time.Time, from, to *time.Time) bool {
	day := createdAt.UTC().Format(domain.DateFormat)
	if from != nil && day < from.Format(domain.DateFormat) {
		return false
	}
	if to != nil && day > to.Format(domain.DateFormat) {
		return false
	}
	return true
}

func clonePackage(pkg domain.TourPackage) domain.TourPackage {
	pkg.Destinations = append([]string(nil), pkg.Destinations...)
	pkg.Facilities = append([]string(nil), pkg.Facilities...)
	return pkg
}

// AlpsPackage пакет на 10 мест по цене 100.00
func AlpsPackage() domain.TourPackage {
	return domain.TourPackage{
		Name:           "Alps Explorer",
		Description:    "Seven days in the Alps",
		Destinations:   []string{"Zermatt", "Chamonix"},
		StartDate:      time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC),
		Price:          decimal.RequireFromString("100.00"),
		MaxCapacity:    10,
		AvailableSlots: 10,
		Facilities:     []string{"Hotel", "Guide"},
		Status:         domain.PackageStatusActive,
	}
}
