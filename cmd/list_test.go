package cmd

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cmerge.dev/pkg/cmerge/internal/domain"
	m "cmerge.dev/pkg/cmerge/internal/model"
)

func TestListCmd_PassesPlanArgs(t *testing.T) {
	cmd := newTestRootCmd(t)
	cmd.AddCommand(newListCmd())
	workflow := stubWorkflow(t)

	workflow.On("List", mock.Anything, domain.PlanArgs{
		Files:        []m.Path{},
		InDir:        "src",
		Auto:         true,
		Exclude:      []string{"third_party/**"},
		SourceInline: false,
		InlineOther:  true,
	}).Return(nil).Once()

	cmd.SetArgs([]string{"list", "-a", "-i", "src", "-x", "third_party/**", "--inline_other"})

	require.NoError(t, cmd.Execute())
}

func TestListCmd_ExplicitFiles(t *testing.T) {
	cmd := newTestRootCmd(t)
	cmd.AddCommand(newListCmd())
	workflow := stubWorkflow(t)

	workflow.On("List", mock.Anything, mock.MatchedBy(func(args domain.PlanArgs) bool {
		return assert.ObjectsAreEqual([]m.Path{"main.cpp", "a.h"}, args.Files)
	})).Return(fmt.Errorf("plan: invalid exclude pattern")).Once()

	cmd.SetArgs([]string{"list", "main.cpp", "a.h"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}
