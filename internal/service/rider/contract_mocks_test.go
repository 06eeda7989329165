// Code generated by MockGen. DO NOT EDIT.
// Source: contract.go
//
// Generated by this command:
//
//	mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rider_test
//

// Package rider_test is a generated GoMock package.
package rider_test

import (
	context "context"
	entities "dispatch/internal/entities"
	reflect "reflect"
	time "time"

	gomock "go.uber.org/mock/gomock"
)

// MockRepository is a mock of Repository interface.
type MockRepository struct {
	ctrl     *gomock.Controller
	recorder *MockRepositoryMockRecorder
	isgomock struct{}
}

// MockRepositoryMockRecorder is the mock recorder for MockRepository.
type MockRepositoryMockRecorder struct {
	mock *MockRepository
}

// NewMockRepository creates a new mock instance.
func NewMockRepository(ctrl *gomock.Controller) *MockRepository {
	mock := &MockRepository{ctrl: ctrl}
	mock.recorder = &MockRepositoryMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockRepository) EXPECT() *MockRepositoryMockRecorder {
	return m.recorder
}

// Create mocks base method.
func (m *MockRepository) Create(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Create", ctx, riderModify)
	ret0, _ := ret[0].(*entities.Rider)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Create indicates an expected call of Create.
func (mr *MockRepositoryMockRecorder) Create(ctx, riderModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Create", reflect.TypeOf((*MockRepository)(nil).Create), ctx, riderModify)
}

// DecideApproval mocks base method.
func (m *MockRepository) DecideApproval(ctx context.Context, riderID string, decision entities.ApprovalStatusType) (*entities.Rider, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "DecideApproval", ctx, riderID, decision)
	ret0, _ := ret[0].(*entities.Rider)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// DecideApproval indicates an expected call of DecideApproval.
func (mr *MockRepositoryMockRecorder) DecideApproval(ctx, riderID, decision any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "DecideApproval", reflect.TypeOf((*MockRepository)(nil).DecideApproval), ctx, riderID, decision)
}

// GetAll mocks base method.
func (m *MockRepository) GetAll(ctx context.Context, availableOnly bool) ([]entities.Rider, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetAll", ctx, availableOnly)
	ret0, _ := ret[0].([]entities.Rider)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetAll indicates an expected call of GetAll.
func (mr *MockRepositoryMockRecorder) GetAll(ctx, availableOnly any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetAll", reflect.TypeOf((*MockRepository)(nil).GetAll), ctx, availableOnly)
}

// GetByID mocks base method.
func (m *MockRepository) GetByID(ctx context.Context, riderID string) (*entities.Rider, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByID", ctx, riderID)
	ret0, _ := ret[0].(*entities.Rider)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByID indicates an expected call of GetByID.
func (mr *MockRepositoryMockRecorder) GetByID(ctx, riderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByID", reflect.TypeOf((*MockRepository)(nil).GetByID), ctx, riderID)
}

// GetByUserID mocks base method.
func (m *MockRepository) GetByUserID(ctx context.Context, userID string) (*entities.Rider, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "GetByUserID", ctx, userID)
	ret0, _ := ret[0].(*entities.Rider)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// GetByUserID indicates an expected call of GetByUserID.
func (mr *MockRepositoryMockRecorder) GetByUserID(ctx, userID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "GetByUserID", reflect.TypeOf((*MockRepository)(nil).GetByUserID), ctx, userID)
}

// IncrementTotalDeliveries mocks base method.
func (m *MockRepository) IncrementTotalDeliveries(ctx context.Context, riderID string) (*entities.Rider, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IncrementTotalDeliveries", ctx, riderID)
	ret0, _ := ret[0].(*entities.Rider)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IncrementTotalDeliveries indicates an expected call of IncrementTotalDeliveries.
func (mr *MockRepositoryMockRecorder) IncrementTotalDeliveries(ctx, riderID any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IncrementTotalDeliveries", reflect.TypeOf((*MockRepository)(nil).IncrementTotalDeliveries), ctx, riderID)
}

// Update mocks base method.
func (m *MockRepository) Update(ctx context.Context, riderModify entities.RiderModify) (*entities.Rider, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Update", ctx, riderModify)
	ret0, _ := ret[0].(*entities.Rider)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Update indicates an expected call of Update.
func (mr *MockRepositoryMockRecorder) Update(ctx, riderModify any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Update", reflect.TypeOf((*MockRepository)(nil).Update), ctx, riderModify)
}

// UpdateUnavailableWhereStale mocks base method.
func (m *MockRepository) UpdateUnavailableWhereStale(ctx context.Context, cutoff time.Time) (int64, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "UpdateUnavailableWhereStale", ctx, cutoff)
	ret0, _ := ret[0].(int64)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// UpdateUnavailableWhereStale indicates an expected call of UpdateUnavailableWhereStale.
func (mr *MockRepositoryMockRecorder) UpdateUnavailableWhereStale(ctx, cutoff any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "UpdateUnavailableWhereStale", reflect.TypeOf((*MockRepository)(nil).UpdateUnavailableWhereStale), ctx, cutoff)
}

// MockProfileService is a mock of ProfileService interface.
type MockProfileService struct {
	ctrl     *gomock.Controller
	recorder *MockProfileServiceMockRecorder
	isgomock struct{}
}

// MockProfileServiceMockRecorder is the mock recorder for MockProfileService.
type MockProfileServiceMockRecorder struct {
	mock *MockProfileService
}

// NewMockProfileService creates a new mock instance.
func NewMockProfileService(ctrl *gomock.Controller) *MockProfileService {
	mock := &MockProfileService{ctrl: ctrl}
	mock.recorder = &MockProfileServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockProfileService) EXPECT() *MockProfileServiceMockRecorder {
	return m.recorder
}

// SetStatus mocks base method.
func (m *MockProfileService) SetStatus(ctx context.Context, profileID string, status entities.ProfileStatusType) (*entities.Profile, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "SetStatus", ctx, profileID, status)
	ret0, _ := ret[0].(*entities.Profile)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// SetStatus indicates an expected call of SetStatus.
func (mr *MockProfileServiceMockRecorder) SetStatus(ctx, profileID, status any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "SetStatus", reflect.TypeOf((*MockProfileService)(nil).SetStatus), ctx, profileID, status)
}

// MockTxManager is a mock of TxManager interface.
type MockTxManager struct {
	ctrl     *gomock.Controller
	recorder *MockTxManagerMockRecorder
	isgomock struct{}
}

// MockTxManagerMockRecorder is the mock recorder for MockTxManager.
type MockTxManagerMockRecorder struct {
	mock *MockTxManager
}

// NewMockTxManager creates a new mock instance.
func NewMockTxManager(ctrl *gomock.Controller) *MockTxManager {
	mock := &MockTxManager{ctrl: ctrl}
	mock.recorder = &MockTxManagerMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockTxManager) EXPECT() *MockTxManagerMockRecorder {
	return m.recorder
}

// Do mocks base method.
func (m *MockTxManager) Do(ctx context.Context, fn func(context.Context) error) error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Do", ctx, fn)
	ret0, _ := ret[0].(error)
	return ret0
}

// Do indicates an expected call of Do.
func (mr *MockTxManagerMockRecorder) Do(ctx, fn any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Do", reflect.TypeOf((*MockTxManager)(nil).Do), ctx, fn)
}
