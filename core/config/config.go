package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"

	// EnvConfigPath names the environment variable pointing at an override
	// configuration.
	EnvConfigPath = "HOSTREPORT_CONFIG"
)

// Configuration holds the report's presentation settings. MaxEntries and Info
// only come from the built-in file, see Overrides for what can be changed.
type Configuration struct {
	BannerWidth int        `json:"banner_width" validate:"gte=1,lte=200"`
	MaxEntries  int        `json:"max_entries" validate:"gte=1,lte=10"`
	Info        []InfoItem `json:"info" validate:"min=1,unique=Key,dive"`
	UsageHint   string     `json:"usage_hint" validate:"required"`
}

// InfoItem is a single row in the feature demo's info table.
type InfoItem struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}

// Overrides are the fields an override file may set.
type Overrides struct {
	BannerWidth int    `json:"banner_width"`
	UsageHint   string `json:"usage_hint"`
}

// Apply copies the overrides onto c.
func (o Overrides) Apply(c *Configuration) {
	c.BannerWidth = o.BannerWidth
	c.UsageHint = o.UsageHint
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Default returns the built-in configuration.
func Default() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}
