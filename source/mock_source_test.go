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

package source

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMockSourceSatisfiesInterface(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewMockSource(ctrl)
	var _ Source = m

	wantErr := errors.New("eof")
	m.EXPECT().NextSamples(gomock.Any()).Return(SampleBatch{InspectorID: 1}, wantErr)
	m.EXPECT().Info().Return(Info{Driver: "test"})
	m.EXPECT().Close().Return(nil)

	_, err := m.NextSamples(context.Background())
	require.ErrorIs(t, err, wantErr)
	require.Equal(t, "test", m.Info().Driver)
	require.NoError(t, m.Close())
}
