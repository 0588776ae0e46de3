// Package naming generates names for environment resources.
package naming
