// Package repotest provides in-memory repositories and collaborators for
// tests of the usecase and handler layers.
package repotest

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/studio-booking/internal/audit"
	"github.com/BruksfildServices01/studio-booking/internal/auth"
	"github.com/BruksfildServices01/studio-booking/internal/domain/booking"
	"github.com/BruksfildServices01/studio-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/studio-booking/internal/domain/profile"
	"github.com/BruksfildServices01/studio-booking/internal/httperr"
	"github.com/BruksfildServices01/studio-booking/internal/models"
)

// ErrInjected is returned by repositories whose Fail flag is set.
var ErrInjected = errors.New("repotest: injected failure")

// Store holds every table. The typed views share it.
type Store struct {
	mu       sync.Mutex
	users    map[string]models.User
	profiles map[uuid.UUID]models.Profile
	services map[uuid.UUID]models.Service
	bookings map[uuid.UUID]models.Booking

	Fail bool
}

func NewStore() *Store {
	return &Store{
		users:    map[string]models.User{},
		profiles: map[uuid.UUID]models.Profile{},
		services: map[uuid.UUID]models.Service{},
		bookings: map[uuid.UUID]models.Booking{},
	}
}

func (s *Store) Bookings() *Bookings { return &Bookings{s} }
func (s *Store) Services() *Services { return &Services{s} }
func (s *Store) Profiles() *Profiles { return &Profiles{s} }
func (s *Store) Users() *Users       { return &Users{s} }

// AddProfile seeds a profile and returns its id.
func (s *Store) AddProfile(fullName, phone, role string) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.New()
	s.profiles[id] = models.Profile{ID: id, FullName: fullName, Phone: phone, Role: role}
	return id
}

func (s *Store) AddService(svc models.Service) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	s.services[svc.ID] = svc
	return svc.ID
}

func (s *Store) AddBooking(b models.Booking) uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	s.bookings[b.ID] = b
	return b.ID
}

func (s *Store) Profile(id uuid.UUID) (models.Profile, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[id]
	return p, ok
}

func (s *Store) Booking(id uuid.UUID) (models.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	return b, ok
}

func (s *Store) Service(id uuid.UUID) (models.Service, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	svc, ok := s.services[id]
	return svc, ok
}

func (s *Store) BookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

// ===============================
// Bookings
// ===============================

type Bookings struct{ s *Store }

func (r *Bookings) CreateBooking(_ context.Context, b *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail {
		return ErrInjected
	}
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	r.s.bookings[b.ID] = *b
	return nil
}

func (r *Bookings) GetBooking(_ context.Context, id uuid.UUID) (*models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &b, nil
}

func (r *Bookings) UpdateBooking(_ context.Context, b *models.Booking) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail {
		return ErrInjected
	}
	r.s.bookings[b.ID] = *b
	return nil
}

func (r *Bookings) ListAll(_ context.Context) ([]models.Booking, error) {
	return r.list(func(models.Booking) bool { return true })
}

func (r *Bookings) ListForEmployee(_ context.Context, employeeID uuid.UUID) ([]models.Booking, error) {
	return r.list(func(b models.Booking) bool { return b.EmployeeID == employeeID })
}

func (r *Bookings) list(keep func(models.Booking) bool) ([]models.Booking, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail {
		return nil, ErrInjected
	}

	var out []models.Booking
	for _, b := range r.s.bookings {
		if !keep(b) {
			continue
		}
		b.Client = r.s.profiles[b.ClientID]
		b.Service = r.s.services[b.ServiceID]
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].AppointmentDate.Before(out[j].AppointmentDate)
	})
	return out, nil
}

// ===============================
// Services
// ===============================

type Services struct{ s *Store }

func (r *Services) ListServices(_ context.Context) ([]models.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail {
		return nil, ErrInjected
	}

	out := make([]models.Service, 0, len(r.s.services))
	for _, svc := range r.s.services {
		out = append(out, r.withSpecialist(svc))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *Services) GetService(_ context.Context, id uuid.UUID) (*models.Service, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail {
		return nil, ErrInjected
	}
	svc, ok := r.s.services[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	svc = r.withSpecialist(svc)
	return &svc, nil
}

func (r *Services) CreateService(_ context.Context, svc *models.Service) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail {
		return ErrInjected
	}
	if svc.ID == uuid.Nil {
		svc.ID = uuid.New()
	}
	r.s.services[svc.ID] = *svc
	return nil
}

func (r *Services) DeleteService(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail {
		return ErrInjected
	}
	if _, ok := r.s.services[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.s.services, id)
	return nil
}

func (r *Services) withSpecialist(svc models.Service) models.Service {
	svc.Specialist = nil
	if svc.SpecialistID != nil {
		if p, ok := r.s.profiles[*svc.SpecialistID]; ok {
			svc.Specialist = &p
		}
	}
	return svc
}

// ===============================
// Profiles
// ===============================

type Profiles struct{ s *Store }

func (r *Profiles) GetProfile(_ context.Context, id uuid.UUID) (*models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail {
		return nil, ErrInjected
	}
	p, ok := r.s.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &p, nil
}

func (r *Profiles) UpdateContact(_ context.Context, id uuid.UUID, fullName, phone string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail {
		return ErrInjected
	}
	p, ok := r.s.profiles[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.FullName = fullName
	p.Phone = phone
	r.s.profiles[id] = p
	return nil
}

func (r *Profiles) ListByRole(_ context.Context, role string) ([]models.Profile, error) {
	return r.list(func(p models.Profile) bool { return p.Role == role })
}

func (r *Profiles) ListAll(_ context.Context) ([]models.Profile, error) {
	return r.list(func(models.Profile) bool { return true })
}

func (r *Profiles) list(keep func(models.Profile) bool) ([]models.Profile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail {
		return nil, ErrInjected
	}
	var out []models.Profile
	for _, p := range r.s.profiles {
		if keep(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FullName < out[j].FullName })
	return out, nil
}

// ===============================
// Users
// ===============================

type Users struct{ s *Store }

func (r *Users) CreateUserWithProfile(_ context.Context, user *models.User, p *models.Profile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Fail {
		return ErrInjected
	}
	if _, exists := r.s.users[user.Email]; exists {
		return httperr.ErrBusiness("email_already_registered")
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	p.ID = user.ID
	r.s.users[user.Email] = *user
	r.s.profiles[p.ID] = *p
	return nil
}

func (r *Users) FindUserByEmail(_ context.Context, email string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[email]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &u, nil
}

var (
	_ booking.Repository = (*Bookings)(nil)
	_ catalog.Repository = (*Services)(nil)
	_ profile.Repository = (*Profiles)(nil)
	_ auth.Users         = (*Users)(nil)
)

// ===============================
// Collaborators
// ===============================

// Recorder collects audit events synchronously.
type Recorder struct {
	mu     sync.Mutex
	events []audit.Event
}

func (r *Recorder) Dispatch(ev audit.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *Recorder) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Action
	}
	return out
}

// Locker counts acquisitions. When Busy is set every Acquire fails with Err.
type Locker struct {
	mu       sync.Mutex
	Busy     bool
	Err      error
	Acquired int
	Released int
}

func (l *Locker) Acquire(_ context.Context, _ string, _ uuid.UUID) (func(), error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.Busy {
		return nil, l.Err
	}
	l.Acquired++
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.Released++
	}, nil
}
