package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/webfleet-dev/webfleet/internal/certs"
	"github.com/webfleet-dev/webfleet/internal/platform/azure"
	"github.com/webfleet-dev/webfleet/internal/provisioning"
)

func reportFixture() *provisioning.Report {
	state := provisioning.NewState()
	state.Group = &azure.ResourceGroup{Name: "demo-rg-abc", Region: "westus"}
	state.Domain = &azure.Domain{Name: "demo-abc.com"}
	state.Certificate = &certs.Bundle{PFXPath: "certs/demo-abc-com.pfx"}
	state.Plans = []*azure.Plan{
		{Name: "demo-plan1-abc", Region: "westus", TargetCapacity: 2},
	}
	state.Apps = []*azure.App{
		{Name: "demo-app1-abc", Region: "westus"},
	}
	state.Profile = &azure.TrafficProfile{Name: "demo-tm-abc", FQDN: "demo-tm-abc.trafficmanager.net"}

	return &provisioning.Report{
		State:            provisioning.StateDone,
		Resources:        state,
		CleanupAttempted: true,
	}
}

func TestRenderReport_Success(t *testing.T) {
	out := RenderReport("demo", reportFixture())

	assert.Contains(t, out, "webfleet: demo")
	assert.Contains(t, out, "provisioning succeeded")
	assert.Contains(t, out, "demo-rg-abc")
	assert.Contains(t, out, "demo-abc.com")
	assert.Contains(t, out, "capacity 2")
	assert.Contains(t, out, "demo-tm-abc.trafficmanager.net")
	assert.Contains(t, out, "resource group deleted")
}

func TestRenderReport_ProvisioningFailure(t *testing.T) {
	report := reportFixture()
	report.ProvisionErr = errors.New("deployment rejected")

	out := RenderReport("demo", report)
	assert.Contains(t, out, "provisioning failed: deployment rejected")
	assert.NotContains(t, out, "provisioning succeeded")
}

func TestRenderReport_CleanupFailure(t *testing.T) {
	report := reportFixture()
	report.CleanupErr = errors.New("deletion stuck")

	out := RenderReport("demo", report)
	assert.Contains(t, out, "resource group deletion failed: deletion stuck")
}

func TestRenderReport_EnvironmentKept(t *testing.T) {
	report := reportFixture()
	report.CleanupAttempted = false

	out := RenderReport("demo", report)
	assert.Contains(t, out, "environment kept")
}
