package domain

// VendorDetails describes a NAC vendor and its product
type VendorDetails struct {
	ID               string   `yaml:"id" json:"id"`
	Name             string   `yaml:"name" json:"name"`
	ShortName        string   `yaml:"short_name" json:"short_name"`
	Description      string   `yaml:"description" json:"description"`
	ProductName      string   `yaml:"product_name" json:"product_name"`
	DeploymentModels []string `yaml:"deployment_models" json:"deployment_models"`
	PrimaryColor     string   `yaml:"primary_color" json:"primary_color"`
	SecondaryColor   string   `yaml:"secondary_color" json:"secondary_color"`
	Website          string   `yaml:"website" json:"website"`
	HasCloudOption   bool     `yaml:"has_cloud_option" json:"has_cloud_option"`
	HasOnPremOption  bool     `yaml:"has_on_prem_option" json:"has_on_prem_option"`
	FoundedYear      int      `yaml:"founded_year" json:"founded_year"`
	Headquarters     string   `yaml:"headquarters" json:"headquarters"`

	GartnerRating   *float64 `yaml:"gartner_rating,omitempty" json:"gartner_rating,omitempty"`
	ForresterRating *float64 `yaml:"forrester_rating,omitempty" json:"forrester_rating,omitempty"`
	NPSScore        *float64 `yaml:"nps_score,omitempty" json:"nps_score,omitempty"`
	MarketShare     *float64 `yaml:"market_share,omitempty" json:"market_share,omitempty"`
}

// FeatureRating is a qualitative value with a 1-5 score
type FeatureRating struct {
	Value string `yaml:"value" json:"value"`
	Score int    `yaml:"score" json:"score"`
}

// VendorFeature pairs a feature name with a vendor's rating for it
type VendorFeature struct {
	Feature string        `json:"feature"`
	Rating  FeatureRating `json:"rating"`
}
