package service

import (
	"fmt"
	"hash/fnv"
)

var streetsByCountry = map[string][]string{
	"United Kingdom": {
		"Baker Street, London",
		"Piccadilly, London",
		"Oxford Street, London",
		"Regent Street, London",
		"Canary Wharf, London",
		"The City, London",
	},
	"United States": {
		"Fifth Avenue, New York",
		"Wall Street, New York",
		"Madison Avenue, New York",
		"Broadway, New York",
		"Park Avenue, New York",
		"Times Square, New York",
	},
	"Singapore": {
		"Marina Bay, Singapore",
		"Orchard Road, Singapore",
		"Raffles Place, Singapore",
		"Sentosa Island, Singapore",
		"Clarke Quay, Singapore",
		"Chinatown, Singapore",
	},
	"China": {
		"Nathan Road, Hong Kong",
		"Central District, Hong Kong",
		"Tsim Sha Tsui, Hong Kong",
		"Causeway Bay, Hong Kong",
		"Admiralty, Hong Kong",
		"Wan Chai, Hong Kong",
	},
}

// mockAddress fills in a placeholder address for investors uploaded without
// one. Same country and name always give the same address.
func mockAddress(country, investorName string) string {
	streets, ok := streetsByCountry[country]
	if !ok {
		streets = []string{fmt.Sprintf("Main Street, %s", country)}
	}

	h := fnv.New32a()
	h.Write([]byte(investorName))
	sum := h.Sum32()

	return fmt.Sprintf("%d %s", sum%100+1, streets[sum%uint32(len(streets))])
}
