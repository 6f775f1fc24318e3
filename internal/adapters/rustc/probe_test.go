package rustc_test

import (
	"context"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/cargojni/internal/adapters/rustc"
	"go.trai.ch/cargojni/internal/core/domain"
	"go.trai.ch/cargojni/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

const verboseVersion = `rustc 1.82.0 (f6e511eec 2024-10-15)
binary: rustc
commit-hash: f6e511eec7342f59a25f7c0534f1dbea00d01b14
commit-date: 2024-10-15
host: x86_64-unknown-linux-gnu
release: 1.82.0
LLVM version: 19.1.1
`

func TestProbe_DefaultTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExec := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	want := domain.Command{Name: "/opt/rustc", Args: []string{"--version", "--verbose"}}
	mockExec.EXPECT().Execute(gomock.Any(), want, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, stdout, _ io.Writer) error {
			_, err := io.WriteString(stdout, verboseVersion)
			return err
		})
	mockLogger.EXPECT().Info("Default rust target triple: x86_64-unknown-linux-gnu")

	triple, ok := rustc.NewProbe(mockExec, mockLogger).DefaultTarget(context.Background(), "/opt/rustc")
	assert.True(t, ok)
	assert.Equal(t, "x86_64-unknown-linux-gnu", triple)
}

func TestProbe_DefaultTarget_NonZeroExit(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExec := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	failure := zerr.With(zerr.Wrap(zerr.New("exit status 1"), "command failed"), "exit_code", 1)
	mockExec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(failure)
	mockLogger.EXPECT().Warn("Failed to get default target triple from rustc (exit code: 1)")

	triple, ok := rustc.NewProbe(mockExec, mockLogger).DefaultTarget(context.Background(), "rustc")
	assert.False(t, ok)
	assert.Empty(t, triple)
}

func TestProbe_DefaultTarget_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockExec := mocks.NewMockExecutor(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)

	mockExec.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.Command, stdout, _ io.Writer) error {
			_, err := io.WriteString(stdout, "rustc 1.82.0\n")
			return err
		})
	mockLogger.EXPECT().Warn("Failed to parse `rustc -Vv` output")

	_, ok := rustc.NewProbe(mockExec, mockLogger).DefaultTarget(context.Background(), "rustc")
	assert.False(t, ok)
}

func TestParseHostTriple(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
		ok     bool
	}{
		{name: "unix newlines", output: verboseVersion, want: "x86_64-unknown-linux-gnu", ok: true},
		{name: "windows newlines", output: "binary: rustc\r\nhost: x86_64-pc-windows-msvc\r\n", want: "x86_64-pc-windows-msvc", ok: true},
		{name: "missing", output: "binary: rustc\n", ok: false},
		{name: "empty value", output: "host: \n", ok: false},
		{name: "indented line ignored", output: "  host: aarch64-apple-darwin\n", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := rustc.ParseHostTriple(tt.output)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
