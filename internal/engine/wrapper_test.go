package engine_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/agbru/fractalcmp/internal/engine"
	"github.com/agbru/fractalcmp/internal/engine/mocks"
	apperrors "github.com/agbru/fractalcmp/internal/errors"
	"github.com/agbru/fractalcmp/internal/sierpinski"
)

var testProgram = engine.Program("++[>+<-]>.")

// TestWrapper_RoundTripMatchesNative runs the smallest pattern through a
// mocked engine and checks it decodes to the native depth-0 rendering.
func TestWrapper_RoundTripMatchesNative(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockEngine(ctrl)
	mock.EXPECT().Name().Return("mock").AnyTimes()
	mock.EXPECT().
		Execute(gomock.Any(), testProgram, gomock.Len(0)).
		Return(engine.Response{Status: engine.StatusSuccess, Output: []byte("*\n")}, nil)

	text, err := engine.NewWrapper(mock).Run(context.Background(), testProgram, nil)
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if want := sierpinski.Render(0); text != want {
		t.Errorf("decoded text = %q, want %q", text, want)
	}
}

// TestWrapper_FailureIsNotDecoded checks that a failed status surfaces an
// ExecutionError even when the output bytes are garbage.
func TestWrapper_FailureIsNotDecoded(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockEngine(ctrl)
	mock.EXPECT().Name().Return("mock").AnyTimes()
	mock.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(engine.Response{Status: 2, Output: []byte{0xff, 0xfe}}, nil)

	_, err := engine.NewWrapper(mock).Run(context.Background(), testProgram, nil)

	var execErr apperrors.ExecutionError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecutionError, got %T (%v)", err, err)
	}
	if execErr.Status != 2 || execErr.Engine != "mock" {
		t.Errorf("ExecutionError = %+v", execErr)
	}
	var decodeErr apperrors.DecodeError
	if errors.As(err, &decodeErr) {
		t.Error("a failed execution must not be reported as a decode failure")
	}
}

// TestWrapper_InvalidUTF8 checks that bad output bytes on a successful run
// produce a DecodeError, distinct from ExecutionError.
func TestWrapper_InvalidUTF8(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockEngine(ctrl)
	mock.EXPECT().Name().Return("mock").AnyTimes()
	mock.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(engine.Response{Status: engine.StatusSuccess, Output: []byte("* *\n\xc3\x28")}, nil)

	_, err := engine.NewWrapper(mock).Run(context.Background(), testProgram, nil)

	var decodeErr apperrors.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %T (%v)", err, err)
	}
	if decodeErr.Offset != 4 || decodeErr.Length != 6 {
		t.Errorf("DecodeError = %+v, want offset 4 length 6", decodeErr)
	}
	var execErr apperrors.ExecutionError
	if errors.As(err, &execErr) {
		t.Error("a decode failure must not be reported as an execution failure")
	}
}

// TestWrapper_IsolatesCallerBuffers checks that an engine scribbling over
// its arguments cannot reach the caller's program or input.
func TestWrapper_IsolatesCallerBuffers(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockEngine(ctrl)
	mock.EXPECT().Name().Return("mock").AnyTimes()
	mock.EXPECT().
		Execute(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, program engine.Program, input []byte) (engine.Response, error) {
			for i := range program {
				program[i] = 'x'
			}
			for i := range input {
				input[i] = 'x'
			}
			return engine.Response{Status: engine.StatusSuccess}, nil
		})

	program := engine.Program("+-<>")
	input := []byte("abc")
	if _, err := engine.NewWrapper(mock).Exec(context.Background(), program, input); err != nil {
		t.Fatalf("Exec returned error: %v", err)
	}
	if string(program) != "+-<>" || string(input) != "abc" {
		t.Errorf("caller buffers were modified: program=%q input=%q", program, input)
	}
}

func TestWrapper_EngineError(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	mock := mocks.NewMockEngine(ctrl)
	mock.EXPECT().Name().Return("mock").AnyTimes()
	boom := errors.New("interpreter not found")
	mock.EXPECT().Execute(gomock.Any(), gomock.Any(), gomock.Any()).Return(engine.Response{}, boom)

	_, err := engine.NewWrapper(mock).Run(context.Background(), testProgram, nil)
	if !errors.Is(err, boom) {
		t.Errorf("expected engine error to propagate, got %v", err)
	}
}

func TestWrapper_FillsWallTime(t *testing.T) {
	t.Parallel()
	e := engine.EngineFunc(func(context.Context, engine.Program, []byte) (engine.Response, error) {
		return engine.Response{Status: engine.StatusSuccess, Output: []byte("ok")}, nil
	})
	resp, err := engine.NewWrapper(e).Exec(context.Background(), testProgram, nil)
	if err != nil {
		t.Fatalf("Exec returned error: %v", err)
	}
	if resp.Usage.Wall <= 0 {
		t.Errorf("Usage.Wall = %v, want > 0", resp.Usage.Wall)
	}
}
