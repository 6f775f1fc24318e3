package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cargojni/internal/core/domain"
)

func TestOverrides_Lookup(t *testing.T) {
	o := domain.NewOverrides(
		map[string]string{"rust.cargoCommand": "/opt/cargo"},
		map[string]string{
			"RUST_ANDROID_GRADLE_CARGO_COMMAND": "/usr/bin/cargo",
			"RUST_ANDROID_GRADLE_RUSTC_COMMAND": "/usr/bin/rustc",
		},
	)

	v, ok := o.Lookup("rust.cargoCommand", "RUST_ANDROID_GRADLE_CARGO_COMMAND")
	assert.True(t, ok)
	assert.Equal(t, "/opt/cargo", v)

	v, ok = o.Lookup("rust.rustcCommand", "RUST_ANDROID_GRADLE_RUSTC_COMMAND")
	assert.True(t, ok)
	assert.Equal(t, "/usr/bin/rustc", v)

	_, ok = o.Lookup("rust.pythonCommand", "RUST_ANDROID_GRADLE_PYTHON_COMMAND")
	assert.False(t, ok)
}

func TestOverrides_Flag(t *testing.T) {
	tests := []struct {
		name    string
		value   *string
		ifUnset bool
		want    bool
		wantErr bool
	}{
		{name: "unset", ifUnset: true, want: true},
		{name: "empty", value: strPtr(""), ifUnset: false, want: false},
		{name: "one", value: strPtr("1"), want: true},
		{name: "true", value: strPtr("true"), want: true},
		{name: "zero", value: strPtr("0"), ifUnset: true, want: false},
		{name: "false", value: strPtr("false"), ifUnset: true, want: false},
		{name: "garbage", value: strPtr("yes"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{}
			if tt.value != nil {
				env["FLAG"] = *tt.value
			}
			o := domain.NewOverrides(nil, env)

			got, err := o.Flag("rust.flag", "FLAG", tt.ifUnset)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidFlag)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOverrides_WithPrefix(t *testing.T) {
	o := domain.NewOverrides(
		map[string]string{
			"RUST_ANDROID_GRADLE_TARGET_AARCH64_LINUX_ANDROID_FOO": "from-properties",
			"rust.targets": "arm64",
		},
		map[string]string{
			"RUST_ANDROID_GRADLE_TARGET_AARCH64_LINUX_ANDROID_FOO": "from-env",
			"RUST_ANDROID_GRADLE_TARGET_AARCH64_LINUX_ANDROID_BAR": "bar",
			"RUST_ANDROID_GRADLE_TARGET_X86_64_LINUX_ANDROID_FOO":  "other",
			"RUST_ANDROID_GRADLE_TARGET_AARCH64_LINUX_ANDROID_":    "empty-key",
		},
	)

	got := o.WithPrefix("RUST_ANDROID_GRADLE_TARGET_AARCH64_LINUX_ANDROID_")
	assert.Equal(t, []domain.EnvVar{
		{Key: "BAR", Value: "bar"},
		{Key: "FOO", Value: "from-properties"},
	}, got)
}

func strPtr(v string) *string { return &v }
