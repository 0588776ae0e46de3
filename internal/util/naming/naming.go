package naming

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Naming functions for environment resources.
// All Azure resources created by webfleet follow consistent naming patterns
// so that a whole environment can be identified from its environment name,
// with a random suffix to avoid collisions on globally scoped names.

// RandomName returns prefix followed by a random suffix, truncated to maxLen.
// Suffixes are derived from a v4 UUID; uniqueness is probabilistic, not
// enforced against the remote API.
func RandomName(prefix string, maxLen int) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	name := prefix + suffix
	if maxLen > 0 && len(name) > maxLen {
		name = name[:maxLen]
	}
	return name
}

// Group returns a randomized resource group name for the environment.
func Group(env string) string {
	return RandomName(fmt.Sprintf("%s-rg-", env), 64)
}

// Domain returns a randomized domain name for the environment.
func Domain(env string) string {
	return RandomName(env+"-", 20) + ".com"
}

// Plan returns a randomized App Service plan name.
func Plan(env string, index int) string {
	return RandomName(fmt.Sprintf("%s-plan%d-", env, index+1), 40)
}

// App returns a randomized web app name. Web app names must be globally
// unique since they become the <name>.azurewebsites.net hostname.
func App(env string, index int) string {
	return RandomName(fmt.Sprintf("%s-app%d-", env, index+1), 40)
}

// TrafficProfile returns a randomized Traffic Manager profile name. The name
// doubles as the profile's DNS relative name, so it shares the global
// uniqueness constraint with web apps.
func TrafficProfile(env string) string {
	return RandomName(env+"-tm-", 40)
}

// CertificateFile returns the base file name (no extension) for the
// certificate artifacts generated for domain.
func CertificateFile(domain string) string {
	return strings.ReplaceAll(domain, ".", "-")
}
