package countries

import (
	"strings"

	"github.com/joefazee/holidays/internal/provider"
	"github.com/joefazee/holidays/internal/validator"
)

// AvailableCountryResponse represents a country supported by the registry
type AvailableCountryResponse struct {
	CountryCode string `json:"countryCode"`
	Name        string `json:"name"`
}

// BorderResponse represents a neighbouring country
type BorderResponse struct {
	CommonName   string `json:"commonName"`
	OfficialName string `json:"officialName"`
	CountryCode  string `json:"countryCode"`
	Region       string `json:"region"`
}

// PopulationCountResponse represents one year of a population series
type PopulationCountResponse struct {
	Year  int   `json:"year"`
	Value int64 `json:"value"`
}

// CountryInfoResponse joins borders, population and flag for one country
type CountryInfoResponse struct {
	CommonName     string                    `json:"commonName"`
	Borders        []BorderResponse          `json:"borders"`
	PopulationInfo []PopulationCountResponse `json:"populationInfo"`
	FlagURL        string                    `json:"flagUrl"`
}

// ValidateCountryCode checks a path-supplied country code
func ValidateCountryCode(v *validator.Validator, code string) bool {
	v.Check(validator.IsCountryCode(code), "countryCode", "Country code must be 2 characters long.")
	return v.Valid()
}

// NormalizeCountryCode upper-cases and trims a country code
func NormalizeCountryCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ToAvailableCountryResponseList converts registry entries to responses
func ToAvailableCountryResponseList(countries []provider.AvailableCountry) []AvailableCountryResponse {
	responses := make([]AvailableCountryResponse, len(countries))
	for i := range countries {
		responses[i] = AvailableCountryResponse{
			CountryCode: countries[i].CountryCode,
			Name:        countries[i].Name,
		}
	}
	return responses
}

// ToCountryInfoResponse assembles the joined country document
func ToCountryInfoResponse(info *provider.CountryBorders, population *provider.PopulationRecord, flag *provider.FlagRecord) *CountryInfoResponse {
	borders := make([]BorderResponse, len(info.Borders))
	for i := range info.Borders {
		b := info.Borders[i]
		borders[i] = BorderResponse{
			CommonName:   b.CommonName,
			OfficialName: b.OfficialName,
			CountryCode:  b.CountryCode,
			Region:       b.Region,
		}
	}

	counts := make([]PopulationCountResponse, len(population.PopulationCounts))
	for i, c := range population.PopulationCounts {
		counts[i] = PopulationCountResponse{Year: c.Year, Value: c.Value}
	}

	return &CountryInfoResponse{
		CommonName:     info.CommonName,
		Borders:        borders,
		PopulationInfo: counts,
		FlagURL:        flag.Flag,
	}
}
