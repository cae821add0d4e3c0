package service_test

import (
	"mime/multipart"

	"github.com/eventify/eventify-backend/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(id uint) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *mockUserRepo) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) GetAll() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *mockUserRepo) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *mockUserRepo) DeleteWithTickets(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockUserRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockAdminRepo struct {
	mock.Mock
}

func (m *mockAdminRepo) Create(admin *models.Admin) error {
	args := m.Called(admin)
	return args.Error(0)
}

func (m *mockAdminRepo) GetByEmail(email string) (*models.Admin, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Admin), args.Error(1)
}

func (m *mockAdminRepo) EmailExists(email string) (bool, error) {
	args := m.Called(email)
	return args.Bool(0), args.Error(1)
}

type mockEventRepo struct {
	mock.Mock
}

func (m *mockEventRepo) Create(event *models.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *mockEventRepo) GetByID(id uint) (*models.Event, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *mockEventRepo) GetAll() ([]models.Event, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Event), args.Error(1)
}

func (m *mockEventRepo) Update(event *models.Event) error {
	args := m.Called(event)
	return args.Error(0)
}

func (m *mockEventRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockEventRepo) DecrementAvailableTickets(id uint, quantity int) (bool, error) {
	args := m.Called(id, quantity)
	return args.Bool(0), args.Error(1)
}

func (m *mockEventRepo) IncrementAvailableTickets(id uint, quantity int) error {
	args := m.Called(id, quantity)
	return args.Error(0)
}

func (m *mockEventRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockTicketRepo struct {
	mock.Mock
}

func (m *mockTicketRepo) Create(ticket *models.Ticket) error {
	args := m.Called(ticket)
	return args.Error(0)
}

func (m *mockTicketRepo) GetByID(id uint) (*models.Ticket, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Ticket), args.Error(1)
}

func (m *mockTicketRepo) GetByUserID(userID uint) ([]models.Ticket, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *mockTicketRepo) GetAll() ([]models.Ticket, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ticket), args.Error(1)
}

func (m *mockTicketRepo) Update(ticket *models.Ticket) error {
	args := m.Called(ticket)
	return args.Error(0)
}

func (m *mockTicketRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockTicketRepo) CountByEventID(eventID uint) (int64, error) {
	args := m.Called(eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTicketRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(message *models.Message) error {
	args := m.Called(message)
	return args.Error(0)
}

func (m *mockMessageRepo) GetAll() ([]models.Message, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Message), args.Error(1)
}

func (m *mockMessageRepo) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *mockMessageRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

type mockStorage struct {
	mock.Mock
}

func (m *mockStorage) Save(file *multipart.FileHeader) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

func (m *mockStorage) Delete(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
