package pathutils_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/velyan/dirdiff/internal/utils/path"
)

const (
	homeExpanderSubtestTemplateConstant = "%d_%s"
	testHomeDirectoryConstant           = "/home/tester"
)

func TestHomeExpanderExpand(testInstance *testing.T) {
	testCases := []struct {
		name          string
		candidatePath string
		providerError error
		expectedPath  string
	}{
		{
			name:          "bare_tilde_resolves_to_home",
			candidatePath: "~",
			expectedPath:  testHomeDirectoryConstant,
		},
		{
			name:          "tilde_prefix_joins_relative_path",
			candidatePath: "~/projects/dirdiff",
			expectedPath:  filepath.Join(testHomeDirectoryConstant, "projects/dirdiff"),
		},
		{
			name:          "absolute_path_is_unchanged",
			candidatePath: "/var/data",
			expectedPath:  "/var/data",
		},
		{
			name:          "relative_path_is_unchanged",
			candidatePath: "projects/dirdiff",
			expectedPath:  "projects/dirdiff",
		},
		{
			name:          "tilde_username_form_is_unchanged",
			candidatePath: "~other/projects",
			expectedPath:  "~other/projects",
		},
		{
			name:          "empty_path_is_unchanged",
			candidatePath: "",
			expectedPath:  "",
		},
		{
			name:          "provider_failure_leaves_path_unchanged",
			candidatePath: "~/projects",
			providerError: errors.New("home directory unavailable"),
			expectedPath:  "~/projects",
		},
	}

	for testCaseIndex, testCase := range testCases {
		testInstance.Run(fmt.Sprintf(homeExpanderSubtestTemplateConstant, testCaseIndex, testCase.name), func(testInstance *testing.T) {
			expander := pathutils.NewHomeExpanderWithProvider(func() (string, error) {
				if testCase.providerError != nil {
					return "", testCase.providerError
				}
				return testHomeDirectoryConstant, nil
			})

			require.Equal(testInstance, testCase.expectedPath, expander.Expand(testCase.candidatePath))
		})
	}
}

func TestHomeExpanderNilReceiverReturnsInput(testInstance *testing.T) {
	var expander *pathutils.HomeExpander

	require.Equal(testInstance, "~/projects", expander.Expand("~/projects"))
}
