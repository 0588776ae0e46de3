package destroy

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webfleet-dev/webfleet/internal/config"
	"github.com/webfleet-dev/webfleet/internal/platform/azure"
	"github.com/webfleet-dev/webfleet/internal/provisioning"
	"github.com/webfleet-dev/webfleet/internal/util/tags"
)

func newDestroyContext(mgr azure.Manager) *provisioning.Context {
	return provisioning.NewContext(context.Background(), &config.Config{Environment: "demo"}, mgr)
}

func TestProvision_DeletesTaggedGroups(t *testing.T) {
	var listedKey, listedValue string
	var deleted []string

	client := &azure.MockClient{
		ListResourceGroupsByTagFunc: func(_ context.Context, key, value string) ([]*azure.ResourceGroup, error) {
			listedKey, listedValue = key, value
			return []*azure.ResourceGroup{
				{Name: "demo-rg-abc", Region: "westus"},
				{Name: "demo-rg-def", Region: "westus"},
			}, nil
		},
		DeleteResourceGroupFunc: func(_ context.Context, name string) error {
			deleted = append(deleted, name)
			return nil
		},
	}

	err := NewProvisioner().Provision(newDestroyContext(client))
	require.NoError(t, err)

	assert.Equal(t, tags.KeyEnvironment, listedKey)
	assert.Equal(t, "demo", listedValue)
	assert.Equal(t, []string{"demo-rg-abc", "demo-rg-def"}, deleted)
}

func TestProvision_NoGroupsIsBenign(t *testing.T) {
	deletes := 0
	client := &azure.MockClient{
		DeleteResourceGroupFunc: func(_ context.Context, _ string) error {
			deletes++
			return nil
		},
	}

	err := NewProvisioner().Provision(newDestroyContext(client))
	require.NoError(t, err)
	assert.Equal(t, 0, deletes)
}

func TestProvision_ContinuesPastDeletionFailure(t *testing.T) {
	var deleted []string
	client := &azure.MockClient{
		ListResourceGroupsByTagFunc: func(_ context.Context, _, _ string) ([]*azure.ResourceGroup, error) {
			return []*azure.ResourceGroup{
				{Name: "demo-rg-abc"},
				{Name: "demo-rg-def"},
			}, nil
		},
		DeleteResourceGroupFunc: func(_ context.Context, name string) error {
			deleted = append(deleted, name)
			if name == "demo-rg-abc" {
				return errors.New("locked")
			}
			return nil
		},
	}

	err := NewProvisioner().Provision(newDestroyContext(client))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "demo-rg-abc")
	assert.Equal(t, []string{"demo-rg-abc", "demo-rg-def"}, deleted, "remaining groups are still deleted")
}

func TestProvision_ListFailure(t *testing.T) {
	client := &azure.MockClient{
		ListResourceGroupsByTagFunc: func(_ context.Context, _, _ string) ([]*azure.ResourceGroup, error) {
			return nil, errors.New("throttled")
		},
	}

	err := NewProvisioner().Provision(newDestroyContext(client))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list resource groups")
}
