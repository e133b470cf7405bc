package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/toastlab/internal/cssvars"
	"github.com/alexisbeaulieu97/toastlab/internal/domain/toast"
	"github.com/alexisbeaulieu97/toastlab/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/toastlab/internal/ports"
	"github.com/alexisbeaulieu97/toastlab/internal/theme"
	tlerrors "github.com/alexisbeaulieu97/toastlab/pkg/errors"
)

func newStore(t *testing.T, policy theme.Policy, publisher ports.EventPublisher) *Store {
	t.Helper()
	catalog, err := theme.Builtin()
	require.NoError(t, err)
	s, err := New(context.Background(), Options{
		Workspace: theme.NewWorkspace(catalog, policy),
		Publisher: publisher,
	})
	require.NoError(t, err)
	return s
}

func TestNewStartsFromFirstTheme(t *testing.T) {
	t.Parallel()

	s := newStore(t, theme.PolicyPersist, nil)
	cfg := s.Snapshot()
	require.Equal(t, "shadcn", cfg.Theme.ID)
	require.Equal(t, toast.SizeMedium, cfg.ToastSize)
	require.Equal(t, 4000, cfg.Duration)
	require.Equal(t, "380px", s.CSSVariable(cssvars.Width))
	require.Equal(t, "4000ms", s.CSSVariable(cssvars.Duration))
	require.Equal(t, uint64(0), s.Version())
}

func TestNewAppliesThemeDefaultsAndOverrides(t *testing.T) {
	t.Parallel()

	catalog, err := theme.Builtin()
	require.NoError(t, err)
	s, err := New(context.Background(), Options{
		Workspace: theme.NewWorkspace(catalog, theme.PolicyPersist),
		ThemeID:   "apple",
		Overrides: &toast.Overrides{Duration: toast.Ptr(6000)},
	})
	require.NoError(t, err)

	cfg := s.Snapshot()
	require.Equal(t, toast.TopCenter, cfg.Position)
	require.Equal(t, toast.SizeLarge, cfg.ToastSize)
	require.Equal(t, 6000, cfg.Duration)
	require.Equal(t, "6000ms", s.CSSVariable(cssvars.Duration))
}

func TestNewRejectsInvalidOverrides(t *testing.T) {
	t.Parallel()

	catalog, err := theme.Builtin()
	require.NoError(t, err)
	_, err = New(context.Background(), Options{
		Workspace: theme.NewWorkspace(catalog, theme.PolicyPersist),
		Overrides: &toast.Overrides{IconSize: toast.Ptr(100)},
	})
	var validationErr *tlerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	_, err = New(context.Background(), Options{})
	require.Error(t, err)
}

func TestSetFieldRederivesSizeVariables(t *testing.T) {
	t.Parallel()

	s := newStore(t, theme.PolicyPersist, nil)
	require.NoError(t, s.SetField(context.Background(), Patch{
		Overrides: toast.Overrides{ToastSize: toast.Ptr(toast.SizeLarge)},
	}))

	require.Equal(t, "440px", s.CSSVariable(cssvars.Width))
	require.Equal(t, "20px 24px", s.CSSVariable(cssvars.Padding))
	require.Equal(t, "16px", s.CSSVariable(cssvars.FontSize))
	require.Equal(t, uint64(1), s.Version())
}

func TestSetFieldRejectsInvalidPatch(t *testing.T) {
	t.Parallel()

	s := newStore(t, theme.PolicyPersist, nil)
	before := s.Snapshot()

	err := s.SetField(context.Background(), Patch{
		Overrides: toast.Overrides{Duration: toast.Ptr(0), Gap: toast.Ptr(40)},
	})
	var validationErr *tlerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	require.Equal(t, "duration", validationErr.Field)

	require.Equal(t, before, s.Snapshot())
	require.Equal(t, uint64(0), s.Version())
	require.Equal(t, "12px", s.CSSVariable(cssvars.Gap))
}

func TestSetFieldWithoutChangeIsNoop(t *testing.T) {
	t.Parallel()

	s := newStore(t, theme.PolicyPersist, nil)
	require.NoError(t, s.SetField(context.Background(), Patch{
		Overrides: toast.Overrides{Duration: toast.Ptr(4000)},
	}))
	require.Equal(t, uint64(0), s.Version())
}

func TestSetIconConfigLeavesOtherKindsUntouched(t *testing.T) {
	t.Parallel()

	s := newStore(t, theme.PolicyPersist, nil)
	before := s.Snapshot()

	require.NoError(t, s.SetIconConfig(context.Background(), toast.KindSuccess, IconPatch{
		Mode: toast.Ptr(toast.IconCustom),
	}))

	after := s.Snapshot()
	require.Equal(t, toast.IconCustom, after.Icon(toast.KindSuccess).Mode)
	require.Equal(t, before.Icon(toast.KindSuccess).Preset, after.Icon(toast.KindSuccess).Preset)
	for _, kind := range []toast.Kind{toast.KindError, toast.KindWarning, toast.KindInfo, toast.KindLoading, toast.KindDefault} {
		require.Equal(t, before.Icon(kind), after.Icon(kind), kind)
	}

	err := s.SetIconConfig(context.Background(), toast.Kind("fatal"), IconPatch{})
	require.Error(t, err)

	err = s.SetIconConfig(context.Background(), toast.KindError, IconPatch{Mode: toast.Ptr(toast.IconMode("emoji"))})
	require.Error(t, err)
	require.Equal(t, toast.IconPreset, s.Snapshot().Icon(toast.KindError).Mode)
}

func TestSelectThemeAppliesDefaults(t *testing.T) {
	t.Parallel()

	s := newStore(t, theme.PolicyPersist, nil)
	require.NoError(t, s.SelectTheme(context.Background(), "aws"))

	cfg := s.Snapshot()
	require.Equal(t, "aws", cfg.Theme.ID)
	require.Equal(t, toast.TopRight, cfg.Position)
	require.Equal(t, toast.LoaderTop, cfg.LoaderPosition)
	require.Equal(t, "0 0 auto 0", s.CSSVariable(cssvars.LoaderInset))

	err := s.SelectTheme(context.Background(), "missing")
	var themeErr *tlerrors.ThemeError
	require.True(t, errors.As(err, &themeErr))
	require.Equal(t, "aws", s.Snapshot().Theme.ID)
}

func TestSelectThemeDerivesFromCurrentFields(t *testing.T) {
	t.Parallel()

	s := newStore(t, theme.PolicyPersist, nil)
	require.NoError(t, s.SetField(context.Background(), Patch{
		Overrides: toast.Overrides{Gap: toast.Ptr(20), LoaderVariant: toast.Ptr(toast.LoaderGradient)},
	}))
	require.NoError(t, s.SelectTheme(context.Background(), "linear"))

	require.Equal(t, "20px", s.CSSVariable(cssvars.Gap))
	require.Equal(t, toast.LoaderGradient.Background(), s.CSSVariable(cssvars.LoaderBG))
}

func TestThemeEditsFollowWorkspacePolicy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		policy theme.Policy
		want   string
	}{
		{name: "persist", policy: theme.PolicyPersist, want: "20px"},
		{name: "reset", policy: theme.PolicyReset, want: "8px"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := newStore(t, tt.policy, nil)
			ctx := context.Background()
			require.NoError(t, s.SetCSSVariables(ctx, map[string]string{cssvars.Radius: "20px"}))
			require.Equal(t, "20px", s.CSSVariable(cssvars.Radius))

			require.NoError(t, s.SelectTheme(ctx, "aws"))
			require.NoError(t, s.SelectTheme(ctx, "shadcn"))
			require.Equal(t, tt.want, s.CSSVariable(cssvars.Radius))

			pristine, ok := s.Workspace().Pristine("shadcn")
			require.True(t, ok)
			require.Equal(t, "8px", cssvars.Get(pristine.CustomCSS, cssvars.Radius, toast.Light))
		})
	}
}

func TestColorEditsAreScopedToPreviewMode(t *testing.T) {
	t.Parallel()

	s := newStore(t, theme.PolicyPersist, nil)
	ctx := context.Background()
	require.Equal(t, toast.Dark, s.Snapshot().PreviewMode)

	require.NoError(t, s.SetCSSVariables(ctx, map[string]string{cssvars.Primary: "#ff0000"}))
	require.Equal(t, "#ff0000", s.CSSVariable(cssvars.Primary))

	require.NoError(t, s.SyncHostScheme(ctx, toast.Light))
	require.Equal(t, toast.Light, s.Snapshot().PreviewMode)
	require.Equal(t, "#020817", s.CSSVariable(cssvars.Primary))

	require.Error(t, s.SyncHostScheme(ctx, toast.PreviewMode("sepia")))
	require.Equal(t, toast.Light, s.Snapshot().PreviewMode)
}

func TestCommitsPublishEvents(t *testing.T) {
	t.Parallel()

	publisher := events.NewLoggingPublisher(nil)
	var reasons []string
	var selected []string
	_, err := publisher.Subscribe(ports.EventConfigChanged, func(_ context.Context, event ports.DomainEvent) error {
		payload := event.Payload().(map[string]interface{})
		reasons = append(reasons, payload["reason"].(string))
		return nil
	})
	require.NoError(t, err)
	_, err = publisher.Subscribe(ports.EventThemeSelected, func(_ context.Context, event ports.DomainEvent) error {
		payload := event.Payload().(map[string]interface{})
		selected = append(selected, payload["theme"].(string))
		return nil
	})
	require.NoError(t, err)

	s := newStore(t, theme.PolicyPersist, publisher)
	ctx := context.Background()
	require.NoError(t, s.SetField(ctx, Patch{Overrides: toast.Overrides{Expand: toast.Ptr(true)}}))
	require.Error(t, s.SetField(ctx, Patch{Overrides: toast.Overrides{Offset: toast.Ptr(-1)}}))
	require.NoError(t, s.SelectTheme(ctx, "nord"))

	require.Equal(t, []string{ReasonInit, ReasonField, ReasonTheme}, reasons)
	require.Equal(t, []string{"nord"}, selected)
}

func TestDeriveVariables(t *testing.T) {
	t.Parallel()

	cfg := toast.Base()
	cfg.ToastSize = toast.SizeXXLarge
	cfg.Duration = 2500
	cfg.Offset = 0
	cfg.LoaderPosition = toast.LoaderTop
	cfg.LoaderVariant = toast.LoaderGradient

	vars := DeriveVariables(cfg)
	require.Equal(t, map[string]string{
		cssvars.Duration:    "2500ms",
		cssvars.Gap:         "12px",
		cssvars.Offset:      "0px",
		cssvars.LoaderInset: "0 0 auto 0",
		cssvars.LoaderBG:    "linear-gradient(to right, color-mix(in srgb, var(--tl-primary), transparent 80%), var(--tl-primary))",
		cssvars.Width:       "680px",
		cssvars.Padding:     "36px 44px",
		cssvars.FontSize:    "20px",
	}, vars)
	for name := range vars {
		require.False(t, cssvars.IsColorKey(name), name)
	}
}
