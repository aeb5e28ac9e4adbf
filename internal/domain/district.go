package domain

// District is one of the regency's fixed administrative districts
// (kecamatan). The set is closed: tourism sites always belong to exactly one
// of the 19 districts below.
type District string

const (
	DistrictKedungjati    District = "Kedungjati"
	DistrictKarangrayung  District = "Karangrayung"
	DistrictPenawangan    District = "Penawangan"
	DistrictToroh         District = "Toroh"
	DistrictGeyer         District = "Geyer"
	DistrictPulokulon     District = "Pulokulon"
	DistrictKradenan      District = "Kradenan"
	DistrictGabus         District = "Gabus"
	DistrictNgaringan     District = "Ngaringan"
	DistrictWirosari      District = "Wirosari"
	DistrictTawangharjo   District = "Tawangharjo"
	DistrictGrobogan      District = "Grobogan"
	DistrictPurwodadi     District = "Purwodadi"
	DistrictBrati         District = "Brati"
	DistrictKlambu        District = "Klambu"
	DistrictGodong        District = "Godong"
	DistrictGubug         District = "Gubug"
	DistrictTegowanu      District = "Tegowanu"
	DistrictTanggungharjo District = "Tanggungharjo"
)

// Districts lists every district in fixed enumeration order. Dashboard
// breakdowns and form selects follow this order.
var Districts = []District{
	DistrictKedungjati,
	DistrictKarangrayung,
	DistrictPenawangan,
	DistrictToroh,
	DistrictGeyer,
	DistrictPulokulon,
	DistrictKradenan,
	DistrictGabus,
	DistrictNgaringan,
	DistrictWirosari,
	DistrictTawangharjo,
	DistrictGrobogan,
	DistrictPurwodadi,
	DistrictBrati,
	DistrictKlambu,
	DistrictGodong,
	DistrictGubug,
	DistrictTegowanu,
	DistrictTanggungharjo,
}

// DefaultDistrict is used when a record arrives with an unset district.
var DefaultDistrict = Districts[0]

// districtCentroids maps each district to its fallback display point. A site
// without usable explicit coordinates is plotted at its district centroid.
var districtCentroids = map[District]Point{
	DistrictKedungjati:    {Lat: -7.1667, Lon: 110.6333},
	DistrictKarangrayung:  {Lat: -7.1333, Lon: 110.7333},
	DistrictPenawangan:    {Lat: -7.0667, Lon: 110.8167},
	DistrictToroh:         {Lat: -7.1500, Lon: 110.8833},
	DistrictGeyer:         {Lat: -7.2333, Lon: 110.8667},
	DistrictPulokulon:     {Lat: -7.1333, Lon: 111.0333},
	DistrictKradenan:      {Lat: -7.1667, Lon: 111.1000},
	DistrictGabus:         {Lat: -7.2000, Lon: 111.1667},
	DistrictNgaringan:     {Lat: -7.1000, Lon: 111.1833},
	DistrictWirosari:      {Lat: -7.1167, Lon: 111.0500},
	DistrictTawangharjo:   {Lat: -7.0667, Lon: 111.0167},
	DistrictGrobogan:      {Lat: -7.0500, Lon: 110.9667},
	DistrictPurwodadi:     {Lat: -7.0867, Lon: 110.9157},
	DistrictBrati:         {Lat: -7.0333, Lon: 110.9000},
	DistrictKlambu:        {Lat: -7.0167, Lon: 110.8500},
	DistrictGodong:        {Lat: -7.0333, Lon: 110.7833},
	DistrictGubug:         {Lat: -7.0517, Lon: 110.6733},
	DistrictTegowanu:      {Lat: -7.0167, Lon: 110.6500},
	DistrictTanggungharjo: {Lat: -7.0833, Lon: 110.6167},
}

// IsValid reports whether d is one of the known districts.
func (d District) IsValid() bool {
	_, ok := districtCentroids[d]
	return ok
}

// Centroid returns the district's fallback point.
func (d District) Centroid() (Point, bool) {
	p, ok := districtCentroids[d]
	return p, ok
}

// NormalizeDistrict maps an arbitrary input value onto the closed district
// set, falling back to the default district for unknown or empty input.
func NormalizeDistrict(s string) District {
	d := District(s)
	if d.IsValid() {
		return d
	}
	return DefaultDistrict
}
