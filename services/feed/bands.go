package feed

// The band presets the mobile client offers. Prices are in tỷ VND, areas
// in m². The labels double as the query-string values of the feed
// endpoint; anything unknown is rejected there, not here.

var priceBands = map[string]Band{
	"dưới 2 tỷ":  {Kind: BandBelow, High: 2},
	"2-10 tỷ":    {Kind: BandWithin, Low: 2, High: 10},
	"trên 10 tỷ": {Kind: BandAbove, Low: 10},
}

var areaBands = map[string]Band{
	"dưới 50 m²":  {Kind: BandBelow, High: 50},
	"50-100 m²":   {Kind: BandWithin, Low: 50, High: 100},
	"trên 100 m²": {Kind: BandAbove, Low: 100},
}

// LookupPriceBand resolves a selected price-band label. The empty label
// and the "all" sentinel resolve to no filter.
func LookupPriceBand(label string) (*Band, bool) {
	return lookupBand(priceBands, label)
}

// LookupAreaBand resolves a selected area-band label.
func LookupAreaBand(label string) (*Band, bool) {
	return lookupBand(areaBands, label)
}

func lookupBand(bands map[string]Band, label string) (*Band, bool) {
	key := normalize(label)
	switch key {
	case "", "all", "tất cả":
		return nil, true
	}
	if band, ok := bands[key]; ok {
		return &band, true
	}
	return nil, false
}
