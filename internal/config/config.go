package config

// Config is the top-level webfleet configuration.
type Config struct {
	// Environment names the environment; every resource name and the
	// ownership tags derive from it.
	Environment string `yaml:"environment"`

	// Regions lists the App Service plan regions. Exactly three distinct
	// regions are required; plans are created in list order and the first
	// region hosts the extra web apps.
	Regions []string `yaml:"regions"`

	App         AppSettings         `yaml:"app"`
	Domain      DomainSettings      `yaml:"domain"`
	Certificate CertificateSettings `yaml:"certificate"`

	// Tags are merged into the standard ownership tags on the resource
	// group.
	Tags map[string]string `yaml:"tags"`
}

// AppSettings holds the runtime configuration applied to every web app.
type AppSettings struct {
	NetFrameworkVersion string `yaml:"net_framework_version"`
	PHPVersion          string `yaml:"php_version"`
}

// DomainSettings holds the registrant contact used for the domain purchase.
type DomainSettings struct {
	Contact ContactSettings `yaml:"contact"`
}

// ContactSettings is the domain registrant contact.
type ContactSettings struct {
	FirstName  string `yaml:"first_name"`
	LastName   string `yaml:"last_name"`
	Email      string `yaml:"email"`
	Phone      string `yaml:"phone"`
	Address1   string `yaml:"address"`
	City       string `yaml:"city"`
	State      string `yaml:"state"`
	PostalCode string `yaml:"postal_code"`
	Country    string `yaml:"country"`
}

// CertificateSettings controls the local self-signed certificate output.
type CertificateSettings struct {
	OutputDir string `yaml:"output_dir"`
	Password  string `yaml:"password"`
}
