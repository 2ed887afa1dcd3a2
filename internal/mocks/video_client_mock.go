package mocks

import (
	"context"

	"campaign-server/internal/models"
	"campaign-server/internal/video"

	"github.com/stretchr/testify/mock"
)

// MockVideoClient is a mock type for the video.Client type
type MockVideoClient struct {
	mock.Mock
}

// Submit provides a mock function with given fields: ctx, req
func (_m *MockVideoClient) Submit(ctx context.Context, req video.SubmitRequest) (*models.VideoTaskResult, error) {
	ret := _m.Called(ctx, req)

	var r0 *models.VideoTaskResult
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, video.SubmitRequest) (*models.VideoTaskResult, error)); ok {
		return rf(ctx, req)
	}
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.VideoTaskResult)
	}
	r1 = ret.Error(1)

	return r0, r1
}

// NewMockVideoClient creates a new instance of MockVideoClient. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
func NewMockVideoClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockVideoClient {
	m := &MockVideoClient{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

var _ video.Client = (*MockVideoClient)(nil)
