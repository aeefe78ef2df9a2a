package brand

import "github.com/jmylchreest/brandtinct/internal/colour"

// CompetitorDistanceThreshold is the OKLab×100 distance under which a
// candidate primary is flagged as too close to a known brand colour.
const CompetitorDistanceThreshold = 15.0

// brandColour is one row of the well-known brand table.
type brandColour struct {
	name string
	hex  string
}

// knownBrands are primary colours of widely recognised brands.
var knownBrands = [...]brandColour{
	{"Google", "#4285f4"},
	{"Facebook", "#1877f2"},
	{"Twitter", "#1da1f2"},
	{"LinkedIn", "#0a66c2"},
	{"Instagram", "#e4405f"},
	{"YouTube", "#ff0000"},
	{"Netflix", "#e50914"},
	{"Spotify", "#1db954"},
	{"Apple", "#000000"},
	{"Amazon", "#ff9900"},
	{"Microsoft", "#00a4ef"},
	{"Coca-Cola", "#f40009"},
	{"Pepsi", "#004b93"},
	{"McDonald's", "#ffc72c"},
	{"Starbucks", "#00704a"},
	{"Nike", "#000000"},
	{"Airbnb", "#ff5a5f"},
	{"Slack", "#4a154b"},
	{"Dropbox", "#0061ff"},
	{"Shopify", "#96bf48"},
	{"Stripe", "#635bff"},
	{"PayPal", "#003087"},
	{"Visa", "#1a1f71"},
	{"Mastercard", "#eb001b"},
	{"IBM", "#0f62fe"},
	{"Intel", "#0071c5"},
	{"Samsung", "#1428a0"},
	{"Adobe", "#fa0f00"},
	{"Oracle", "#c74634"},
	{"Salesforce", "#00a1e0"},
	{"Twitch", "#9146ff"},
	{"Discord", "#5865f2"},
	{"Reddit", "#ff4500"},
	{"Pinterest", "#e60023"},
	{"Snapchat", "#fffc00"},
	{"TikTok", "#fe2c55"},
	{"WhatsApp", "#25d366"},
	{"Telegram", "#26a5e4"},
	{"Zoom", "#2d8cff"},
	{"Mailchimp", "#ffe01b"},
	{"HubSpot", "#ff7a59"},
	{"Atlassian", "#0052cc"},
	{"GitLab", "#fc6d26"},
	{"Target", "#cc0000"},
	{"Walmart", "#0071ce"},
	{"IKEA", "#0058a3"},
	{"Ferrari", "#ff2800"},
	{"T-Mobile", "#e20074"},
	{"FedEx", "#4d148c"},
	{"DHL", "#ffcc00"},
	{"Uber", "#000000"},
}

// knownBrandIndex maps normalised brand names to knownBrands rows.
var knownBrandIndex = func() map[string]int {
	idx := make(map[string]int, len(knownBrands))
	for i, b := range knownBrands {
		idx[normaliseName(b.name)] = i
	}
	return idx
}()

// CompetitorFlag is a brand whose colour is too close to the candidate.
type CompetitorFlag struct {
	Brand    string  `json:"brand"`
	Color    string  `json:"color"`
	Distance float64 `json:"distance"`
}

// CompetitorResult is the advisory outcome of CheckCompetitorDiff.
type CompetitorResult struct {
	TooSimilar bool             `json:"too_similar"`
	Flags      []CompetitorFlag `json:"flags"`
}

// KnownBrandColour returns the table colour for a brand name.
func KnownBrandColour(name string) (string, bool) {
	i, ok := knownBrandIndex[normaliseName(name)]
	if !ok {
		return "", false
	}
	return knownBrands[i].hex, true
}

// KnownBrands returns a copy of the brand table in table order.
func KnownBrands() []NamedColor {
	out := make([]NamedColor, len(knownBrands))
	for i, b := range knownBrands {
		out[i] = NamedColor{Name: b.name, Hex: b.hex}
	}
	return out
}

// KnownBrandCount returns the size of the brand table.
func KnownBrandCount() int {
	return len(knownBrands)
}

// CheckCompetitorDiff compares primary against the named competitors first
// and then against the whole brand table for coincidental matches. Pure
// black entries are skipped in the table scan; unknown names are ignored.
func CheckCompetitorDiff(primary string, competitors []string) CompetitorResult {
	primary = colour.NormaliseHex(primary)
	flagged := make(map[int]bool)
	flags := []CompetitorFlag{}

	check := func(i int) {
		if flagged[i] {
			return
		}
		b := knownBrands[i]
		d := colour.DistanceOKLab(primary, b.hex)
		if d < CompetitorDistanceThreshold {
			flagged[i] = true
			flags = append(flags, CompetitorFlag{Brand: b.name, Color: b.hex, Distance: round2(d)})
		}
	}

	for _, name := range competitors {
		if i, ok := knownBrandIndex[normaliseName(name)]; ok {
			check(i)
		}
	}

	for i, b := range knownBrands {
		if b.hex == black {
			continue
		}
		check(i)
	}

	return CompetitorResult{TooSimilar: len(flags) > 0, Flags: flags}
}
