// Package mocks contains gomock doubles for the rangekit stage dispatch.
package mocks

import (
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"

	"go.llib.dev/multirange/pkg/rangekit"
)

// MockStageHandler is a mock of the rangekit.StageHandler interface.
type MockStageHandler[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockStageHandlerMockRecorder[T]
}

// MockStageHandlerMockRecorder is the mock recorder for MockStageHandler.
type MockStageHandlerMockRecorder[T any] struct {
	mock *MockStageHandler[T]
}

var _ rangekit.StageHandler[int] = &MockStageHandler[int]{}

// NewMockStageHandler creates a new mock instance.
func NewMockStageHandler[T any](ctrl *gomock.Controller) *MockStageHandler[T] {
	mock := &MockStageHandler[T]{ctrl: ctrl}
	mock.recorder = &MockStageHandlerMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStageHandler[T]) EXPECT() *MockStageHandlerMockRecorder[T] {
	return m.recorder
}

// Advance mocks base method.
func (m *MockStageHandler[T]) Advance() {
	m.ctrl.T.Helper()
	m.ctrl.Call(m, "Advance")
}

// Advance indicates an expected call of Advance.
func (mr *MockStageHandlerMockRecorder[T]) Advance() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Advance", reflect.TypeOf((*MockStageHandler[T])(nil).Advance))
}

// Clone mocks base method.
func (m *MockStageHandler[T]) Clone() rangekit.StageHandler[T] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Clone")
	ret0, _ := ret[0].(rangekit.StageHandler[T])
	return ret0
}

// Clone indicates an expected call of Clone.
func (mr *MockStageHandlerMockRecorder[T]) Clone() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Clone", reflect.TypeOf((*MockStageHandler[T])(nil).Clone))
}

// Done mocks base method.
func (m *MockStageHandler[T]) Done() bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Done")
	ret0, _ := ret[0].(bool)
	return ret0
}

// Done indicates an expected call of Done.
func (mr *MockStageHandlerMockRecorder[T]) Done() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Done", reflect.TypeOf((*MockStageHandler[T])(nil).Done))
}

// Equal mocks base method.
func (m *MockStageHandler[T]) Equal(arg0 rangekit.StageHandler[T]) bool {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Equal", arg0)
	ret0, _ := ret[0].(bool)
	return ret0
}

// Equal indicates an expected call of Equal.
func (mr *MockStageHandlerMockRecorder[T]) Equal(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Equal", reflect.TypeOf((*MockStageHandler[T])(nil).Equal), arg0)
}

// Get mocks base method.
func (m *MockStageHandler[T]) Get() *T {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Get")
	ret0, _ := ret[0].(*T)
	return ret0
}

// Get indicates an expected call of Get.
func (mr *MockStageHandlerMockRecorder[T]) Get() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Get", reflect.TypeOf((*MockStageHandler[T])(nil).Get))
}

// NextStage mocks base method.
func (m *MockStageHandler[T]) NextStage(arg0 rangekit.Stages[T]) rangekit.StageHandler[T] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NextStage", arg0)
	ret0, _ := ret[0].(rangekit.StageHandler[T])
	return ret0
}

// NextStage indicates an expected call of NextStage.
func (mr *MockStageHandlerMockRecorder[T]) NextStage(arg0 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NextStage", reflect.TypeOf((*MockStageHandler[T])(nil).NextStage), arg0)
}

// Stage mocks base method.
func (m *MockStageHandler[T]) Stage() int {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Stage")
	ret0, _ := ret[0].(int)
	return ret0
}

// Stage indicates an expected call of Stage.
func (mr *MockStageHandlerMockRecorder[T]) Stage() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Stage", reflect.TypeOf((*MockStageHandler[T])(nil).Stage))
}

// MockStage is a mock of the rangekit.Stage interface.
type MockStage[T any] struct {
	ctrl     *gomock.Controller
	recorder *MockStageMockRecorder[T]
}

// MockStageMockRecorder is the mock recorder for MockStage.
type MockStageMockRecorder[T any] struct {
	mock *MockStage[T]
}

var _ rangekit.Stage[int] = &MockStage[int]{}

// NewMockStage creates a new mock instance.
func NewMockStage[T any](ctrl *gomock.Controller) *MockStage[T] {
	mock := &MockStage[T]{ctrl: ctrl}
	mock.recorder = &MockStageMockRecorder[T]{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockStage[T]) EXPECT() *MockStageMockRecorder[T] {
	return m.recorder
}

// Handler mocks base method.
func (m *MockStage[T]) Handler(arg0 int, arg1 bool) rangekit.StageHandler[T] {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Handler", arg0, arg1)
	ret0, _ := ret[0].(rangekit.StageHandler[T])
	return ret0
}

// Handler indicates an expected call of Handler.
func (mr *MockStageMockRecorder[T]) Handler(arg0, arg1 interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Handler", reflect.TypeOf((*MockStage[T])(nil).Handler), arg0, arg1)
}
