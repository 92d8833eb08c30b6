package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLicenseActivateCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().
		Activate(mock.Anything, "INSPECTO-PRO-ABCD-1234").
		Return(nil).
		Once()

	_, err := executeCommand(t, newLicenseCmd(), "license", "activate", "INSPECTO-PRO-ABCD-1234")
	require.NoError(t, err)
}

func TestLicenseActivateCmd_Rejected(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().
		Activate(mock.Anything, "nope").
		Return(errors.New("invalid license key")).
		Once()

	_, err := executeCommand(t, newLicenseCmd(), "license", "activate", "nope")
	require.Error(t, err)
}

func TestLicenseActivateCmd_RequiresKey(t *testing.T) {
	withMockWorkflow(t)

	_, err := executeCommand(t, newLicenseCmd(), "license", "activate")
	require.Error(t, err)
}

func TestLicenseStatusCmd(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	mockWorkflow.EXPECT().Status(mock.Anything).Return(nil).Once()

	_, err := executeCommand(t, newLicenseCmd(), "license", "status")
	require.NoError(t, err)
}

func TestLicenseCmd_ShowsHelp(t *testing.T) {
	withMockWorkflow(t)

	out, err := executeCommand(t, newLicenseCmd(), "license")
	require.NoError(t, err)
	assert.Contains(t, out, "activate")
	assert.Contains(t, out, "status")
}
