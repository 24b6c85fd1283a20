package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/oshokin/siren-grabber/internal/config"
	"github.com/oshokin/siren-grabber/internal/errkind"
	siren_service "github.com/oshokin/siren-grabber/internal/service/siren"
	mock_siren "github.com/oshokin/siren-grabber/internal/service/siren/mocks"
)

func TestRun(t *testing.T) {
	t.Parallel()

	scope := siren_service.Scope{Kind: siren_service.ScopeAlbum, AlbumID: 3}
	errResolve := errkind.Transport("get album detail", errors.New("connection refused"))

	tests := []struct {
		name         string
		resolve      func(context.Context, siren_service.Scope) error
		expectedKind errkind.Kind
		expectErr    bool
	}{
		{
			name:    "success",
			resolve: func(context.Context, siren_service.Scope) error { return nil },
		},
		{
			name:         "resolve error is returned",
			resolve:      func(context.Context, siren_service.Scope) error { return errResolve },
			expectedKind: errkind.KindTransport,
			expectErr:    true,
		},
		{
			name:         "panic is recovered",
			resolve:      func(context.Context, siren_service.Scope) error { panic("boom") },
			expectedKind: errkind.KindUnknown,
			expectErr:    true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			service := mock_siren.NewMockService(ctrl)

			gomock.InOrder(
				service.EXPECT().Resolve(gomock.Any(), scope).DoAndReturn(tt.resolve),
				service.EXPECT().PrintRunSummary(gomock.Any()),
			)

			err := Run(context.Background(), service, scope)
			if !tt.expectErr {
				require.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.expectedKind, errkind.KindOf(err))
		})
	}
}

func TestNewService(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.OutputPath = t.TempDir()
	require.NoError(t, config.ValidateConfig(cfg))

	service, err := NewService(cfg)
	require.NoError(t, err)
	assert.NotNil(t, service)
	assert.Zero(t, service.Statistics().SongsAssembled)
}
