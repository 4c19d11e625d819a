package unreal_test

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/revwatch/internal/adapters/unreal"
	"go.trai.ch/revwatch/internal/core/domain"
	"go.trai.ch/revwatch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func request() domain.BuildRequest {
	return domain.BuildRequest{
		ID:            "build-1",
		ExePath:       "/engine/RunUAT.sh",
		ProjectFile:   "/work/MyGame/MyGame.uproject",
		Platform:      "Win64",
		BuildType:     "Shipping",
		ArchiveDir:    "/work/bin",
		ExtraArgs:     []string{"-iterate"},
		HostProcesses: []string{"UnrealEditor.exe"},
	}
}

func TestCommand(t *testing.T) {
	spec := unreal.Command(request())

	assert.Equal(t, "/engine/RunUAT.sh", spec.Name)
	assert.Equal(t, []string{
		"BuildCookRun",
		"-project=/work/MyGame/MyGame.uproject",
		"-noP4",
		"-clientconfig=Shipping",
		"-targetplatform=Win64",
		"-build", "-cook", "-stage", "-pak", "-package",
		"-utf8output",
		"-archive", "-archivedirectory=/work/bin",
		"-iterate",
	}, spec.Args)
	assert.Equal(t, "/work/MyGame", spec.Dir)
	assert.True(t, spec.PTY)
}

func TestCommand_BatchFile(t *testing.T) {
	req := request()
	req.ExePath = "C:/UE/RunUAT.BAT"
	req.ArchiveDir = ""
	req.ExtraArgs = nil

	spec := unreal.Command(req)

	assert.Equal(t, "cmd", spec.Name)
	assert.Equal(t, []string{"/C", "C:/UE/RunUAT.BAT", "BuildCookRun"}, spec.Args[:3])
	assert.NotContains(t, spec.Args, "-archive")
	assert.Equal(t, "-utf8output", spec.Args[len(spec.Args)-1])
}

type fixture struct {
	starter *mocks.MockProcessStarter
	killer  *mocks.MockProcessKiller
	logger  *mocks.MockLogger
	proc    *mocks.MockProcess
	exec    *unreal.Executor
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	fx := fixture{
		starter: mocks.NewMockProcessStarter(ctrl),
		killer:  mocks.NewMockProcessKiller(ctrl),
		logger:  mocks.NewMockLogger(ctrl),
		proc:    mocks.NewMockProcess(ctrl),
	}
	fx.exec = unreal.NewExecutor(fx.starter, fx.killer, fx.logger)
	return fx
}

func TestExecutor_Execute(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		waitErr  error
		want     domain.BuildOutcome
		warnings int
		errors   int
	}{
		{name: "success", code: 0, want: domain.BuildSuccess},
		{name: "non-zero exit", code: 1, want: domain.BuildFailed, warnings: 1},
		{name: "wait failure", code: -1, waitErr: errors.New("read failed"), want: domain.BuildUnexpectedError, errors: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture(t)
			req := request()

			var streamed []string
			fx.logger.EXPECT().Info(gomock.Any()).AnyTimes()
			fx.logger.EXPECT().Output(unreal.OutputSource, gomock.Any()).Do(func(_, line string) {
				streamed = append(streamed, line)
			}).Times(2)
			fx.logger.EXPECT().Warn(gomock.Any()).Times(tt.warnings)
			fx.logger.EXPECT().Error(gomock.Any()).Times(tt.errors)

			gomock.InOrder(
				fx.killer.EXPECT().KillByName(gomock.Any(), req.HostProcesses).Return(0, nil),
				fx.starter.EXPECT().Start(gomock.Any(), unreal.Command(req)).Return(fx.proc, nil),
			)
			fx.proc.EXPECT().Lines().Return(slices.Values([]string{"Cooking...", "BUILD SUCCESSFUL"}))
			fx.proc.EXPECT().Wait().Return(tt.code, tt.waitErr)

			got := fx.exec.Execute(context.Background(), req)

			assert.Equal(t, tt.want, got)
			assert.Equal(t, []string{"Cooking...", "BUILD SUCCESSFUL"}, streamed)
		})
	}
}

func TestExecutor_Execute_StartFailure(t *testing.T) {
	fx := newFixture(t)

	fx.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	fx.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorIs(t, err, domain.ErrBuildUnexpected)
	})
	fx.killer.EXPECT().KillByName(gomock.Any(), gomock.Any()).Return(0, errors.New("no permission"))
	fx.starter.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil, domain.ErrProcessStartFailed)

	assert.Equal(t, domain.BuildUnexpectedError, fx.exec.Execute(context.Background(), request()))
}

func TestExecutor_Execute_ReportsKilledHosts(t *testing.T) {
	fx := newFixture(t)

	fx.logger.EXPECT().Info("terminated 2 build host process(es)")
	fx.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	fx.killer.EXPECT().KillByName(gomock.Any(), gomock.Any()).Return(2, nil)
	fx.starter.EXPECT().Start(gomock.Any(), gomock.Any()).Return(fx.proc, nil)
	fx.proc.EXPECT().Lines().Return(slices.Values([]string(nil)))
	fx.proc.EXPECT().Wait().Return(0, nil)

	assert.Equal(t, domain.BuildSuccess, fx.exec.Execute(context.Background(), request()))
}
