package coordinator

import (
	"reflect"

	"github.com/amp-labs/arrange/entity"
	"github.com/amp-labs/arrange/ordering"
	"github.com/amp-labs/arrange/presentation"
	"github.com/golang/mock/gomock"
)

// MockOrdering is a gomock double for ordering.Strategy[*entity.Entity].
type MockOrdering struct {
	ctrl     *gomock.Controller
	recorder *MockOrderingMockRecorder
}

// MockOrderingMockRecorder is the mock recorder for MockOrdering.
type MockOrderingMockRecorder struct {
	mock *MockOrdering
}

var _ ordering.Strategy[*entity.Entity] = (*MockOrdering)(nil)

// NewMockOrdering creates a new mock instance.
func NewMockOrdering(ctrl *gomock.Controller) *MockOrdering {
	mock := &MockOrdering{ctrl: ctrl}
	mock.recorder = &MockOrderingMockRecorder{mock}

	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockOrdering) EXPECT() *MockOrderingMockRecorder {
	return m.recorder
}

// Sort mocks base method.
func (m *MockOrdering) Sort(seq []*entity.Entity) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Sort", seq)
}

// Sort indicates an expected call of Sort.
func (mr *MockOrderingMockRecorder) Sort(seq any) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Sort", reflect.TypeOf((*MockOrdering)(nil).Sort), seq)
}

// Name mocks base method.
func (m *MockOrdering) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)

	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockOrderingMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockOrdering)(nil).Name))
}

// MockPresentation is a gomock double for presentation.Strategy[*entity.Entity].
type MockPresentation struct {
	ctrl     *gomock.Controller
	recorder *MockPresentationMockRecorder
}

// MockPresentationMockRecorder is the mock recorder for MockPresentation.
type MockPresentationMockRecorder struct {
	mock *MockPresentation
}

var _ presentation.Strategy[*entity.Entity] = (*MockPresentation)(nil)

// NewMockPresentation creates a new mock instance.
func NewMockPresentation(ctrl *gomock.Controller) *MockPresentation {
	mock := &MockPresentation{ctrl: ctrl}
	mock.recorder = &MockPresentationMockRecorder{mock}

	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockPresentation) EXPECT() *MockPresentationMockRecorder {
	return m.recorder
}

// Render mocks base method.
func (m *MockPresentation) Render(seq []*entity.Entity, sink presentation.Sink) {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Render", seq, sink)
}

// Render indicates an expected call of Render.
func (mr *MockPresentationMockRecorder) Render(seq, sink any) *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Render",
		reflect.TypeOf((*MockPresentation)(nil).Render), seq, sink)
}

// Name mocks base method.
func (m *MockPresentation) Name() string {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Name")
	ret0, _ := ret[0].(string)

	return ret0
}

// Name indicates an expected call of Name.
func (mr *MockPresentationMockRecorder) Name() *gomock.Call {
	mr.mock.ctrl.T.Helper()

	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Name", reflect.TypeOf((*MockPresentation)(nil).Name))
}
