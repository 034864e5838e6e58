/*
Copyright (c) The acdp Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Code generated in the style of mockgen for Source; regenerate with
// `mockgen -source=source.go -destination=mock_source.go -package=source`
// if the interface changes.
package source

import (
	"context"
	"reflect"

	"go.uber.org/mock/gomock"
)

// MockSource is a mock of the Source interface.
type MockSource struct {
	ctrl     *gomock.Controller
	recorder *MockSourceMockRecorder
}

// MockSourceMockRecorder is the mock recorder for MockSource.
type MockSourceMockRecorder struct {
	mock *MockSource
}

// NewMockSource creates a new mock instance.
func NewMockSource(ctrl *gomock.Controller) *MockSource {
	mock := &MockSource{ctrl: ctrl}
	mock.recorder = &MockSourceMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected use.
func (m *MockSource) EXPECT() *MockSourceMockRecorder {
	return m.recorder
}

// NextChannel mocks base method.
func (m *MockSource) NextChannel(ctx context.Context) ([]ChannelDetection, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NextChannel", ctx)
	ret0, _ := ret[0].([]ChannelDetection)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NextChannel indicates an expected call of NextChannel.
func (mr *MockSourceMockRecorder) NextChannel(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NextChannel", reflect.TypeOf((*MockSource)(nil).NextChannel), ctx)
}

// NextSpectrum mocks base method.
func (m *MockSource) NextSpectrum(ctx context.Context) (SpectrumFrame, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NextSpectrum", ctx)
	ret0, _ := ret[0].(SpectrumFrame)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NextSpectrum indicates an expected call of NextSpectrum.
func (mr *MockSourceMockRecorder) NextSpectrum(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NextSpectrum", reflect.TypeOf((*MockSource)(nil).NextSpectrum), ctx)
}

// NextSamples mocks base method.
func (m *MockSource) NextSamples(ctx context.Context) (SampleBatch, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "NextSamples", ctx)
	ret0, _ := ret[0].(SampleBatch)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// NextSamples indicates an expected call of NextSamples.
func (mr *MockSourceMockRecorder) NextSamples(ctx interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "NextSamples", reflect.TypeOf((*MockSource)(nil).NextSamples), ctx)
}

// Info mocks base method.
func (m *MockSource) Info() Info {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Info")
	ret0, _ := ret[0].(Info)
	return ret0
}

// Info indicates an expected call of Info.
func (mr *MockSourceMockRecorder) Info() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Info", reflect.TypeOf((*MockSource)(nil).Info))
}

// Close mocks base method.
func (m *MockSource) Close() error {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Close")
	ret0, _ := ret[0].(error)
	return ret0
}

// Close indicates an expected call of Close.
func (mr *MockSourceMockRecorder) Close() *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Close", reflect.TypeOf((*MockSource)(nil).Close))
}
