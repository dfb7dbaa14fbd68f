package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/manbearwiz/betterer/internal/domain"
	domainmocks "github.com/manbearwiz/betterer/internal/domain/mocks"
	m "github.com/manbearwiz/betterer/internal/model"
)

func TestMergeCmd_UsesResultsConfigByDefault(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Merge", mock.Anything, mock.MatchedBy(func(args domain.MergeArgs) bool {
		return args.ResultsPath == m.Path(".betterer.results") &&
			args.Cwd == m.Path(".") &&
			len(args.Contents) == 0
	})).Return(nil)

	err := executeWithWorkflow(t, mockWorkflow, newMergeCmd(), "merge")
	require.NoError(t, err)
}

func TestMergeCmd_PassesContentsAndCwd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	mockWorkflow.On("Merge", mock.Anything, mock.MatchedBy(func(args domain.MergeArgs) bool {
		return args.ResultsPath == m.Path("results.yaml") &&
			args.Cwd == m.Path("/repo") &&
			len(args.Contents) == 2 && args.Contents[1] == "theirs"
	})).Return(nil)

	err := executeWithWorkflow(t, mockWorkflow, newMergeCmd(),
		"-r", "results.yaml", "merge", "--cwd", "/repo", "ours", "theirs")
	require.NoError(t, err)
}

func TestMergeCmd_FailureIsReturned(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	mockWorkflow.On("Merge", mock.Anything, mock.Anything).Return(errors.New("boom"))

	err := executeWithWorkflow(t, mockWorkflow, newMergeCmd(), "merge")
	require.Error(t, err)
}
