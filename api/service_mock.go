// Copyright 2025 The Population Sample Simulator Authors
// This file is part of the Population Sample Simulator.
//
// The simulator is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The simulator is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the simulator. If not, see <http://www.gnu.org/licenses/>.

// Package api is a generated GoMock package.
package api

import (
	reflect "reflect"

	gomock "go.uber.org/mock/gomock"

	demogen "github.com/thatguywow/population-sample-simulator/demogen"
	ipf "github.com/thatguywow/population-sample-simulator/ipf"
	sampler "github.com/thatguywow/population-sample-simulator/sampler"
)

// MockService is a mock of Service interface.
type MockService struct {
	ctrl     *gomock.Controller
	recorder *MockServiceMockRecorder
	isgomock struct{}
}

// MockServiceMockRecorder is the mock recorder for MockService.
type MockServiceMockRecorder struct {
	mock *MockService
}

// NewMockService creates a new mock instance.
func NewMockService(ctrl *gomock.Controller) *MockService {
	mock := &MockService{ctrl: ctrl}
	mock.recorder = &MockServiceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockService) EXPECT() *MockServiceMockRecorder {
	return m.recorder
}

// Demo mocks base method.
func (m *MockService) Demo(n int) []demogen.Row {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Demo", n)
	ret0, _ := ret[0].([]demogen.Row)
	return ret0
}

// Demo indicates an expected call of Demo.
func (mr *MockServiceMockRecorder) Demo(n any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Demo", reflect.TypeOf((*MockService)(nil).Demo), n)
}

// FitSample mocks base method.
func (m *MockService) FitSample(axes []ipf.Axis, n int) ([]sampler.Record, *ipf.Result, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "FitSample", axes, n)
	ret0, _ := ret[0].([]sampler.Record)
	ret1, _ := ret[1].(*ipf.Result)
	ret2, _ := ret[2].(error)
	return ret0, ret1, ret2
}

// FitSample indicates an expected call of FitSample.
func (mr *MockServiceMockRecorder) FitSample(axes, n any) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "FitSample", reflect.TypeOf((*MockService)(nil).FitSample), axes, n)
}
