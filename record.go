package ip2geo

import (
	"net/netip"

	"github.com/ip2geo/ip2geo/byteview"
	"github.com/ip2geo/ip2geo/internal/schema"
)

// ProxyStatus classifies a ProxyDb record's proxy_type column, per
// spec §4.6's is_proxy derivation.
type ProxyStatus int8

const (
	NotAProxy ProxyStatus = iota
	IsAProxy
	IsADataCenterIPOrSearchEngineRobot
)

func (s ProxyStatus) String() string {
	switch s {
	case NotAProxy:
		return "not a proxy"
	case IsAProxy:
		return "proxy"
	case IsADataCenterIPOrSearchEngineRobot:
		return "data center or search engine robot"
	default:
		return "unknown"
	}
}

// LocationDb is the field set decoded from an IP2Location-product row.
// A zero value for any string field means the column is absent for
// this database's db_type. Latitude/Longitude/Elevation are nil when
// the column is absent for this db_type, and non-nil (including when
// the decoded value is 0.0) when it is present, per spec §3's
// Option<f32> typing.
type LocationDb struct {
	CountryCode        string
	CountryName        string
	Region             string
	City               string
	Latitude           *float32
	Longitude          *float32
	ZipCode            string
	TimeZone           string
	ISP                string
	Domain             string
	NetSpeed           string
	IDDCode            string
	AreaCode           string
	WeatherStationCode string
	WeatherStationName string
	MCC                string
	MNC                string
	MobileBrand        string
	Elevation          *float32
	UsageType          string
	AddressType        string
	Category           string
	District           string
	ASN                string
	ASName             string
}

// ProxyDb is the field set decoded from an IP2Proxy-product row.
type ProxyDb struct {
	CountryCode string
	CountryName string
	ProxyType   string
	Region      string
	City        string
	ISP         string
	Domain      string
	UsageType   string
	ASN         string
	ASName      string
	LastSeen    string
	Threat      string
	Provider    string
	IsProxy     ProxyStatus
}

// Record is the result of a successful lookup: exactly one of Location
// or Proxy is populated, matching which product the opened DB is.
type Record struct {
	// IP is the canonical textual form of the address that was
	// queried, not the canonicalized internal lookup key (spec §4.6
	// step 3: 6to4/Teredo/mapped addresses still echo back the address
	// the caller actually asked about).
	IP string

	Location *LocationDb
	Proxy    *ProxyDb
}

// materialize decodes row rowIdx of table ipv6 into a Record, per the
// steps in spec §4.6. queried is echoed back into Record.IP in its
// canonical textual form.
func materialize(v byteview.ByteView, h header, layout schema.Layout, ipv6 bool, rowIdx uint32, queried netip.Addr) (Record, error) {
	rowWidth := h.rowWidth(ipv6)
	baseAddr := h.ipv4BaseAddr
	if ipv6 {
		baseAddr = h.ipv6BaseAddr
	}
	rowBase := baseAddr + rowIdx*rowWidth

	get := func(f schema.Field) (string, float32, bool, error) {
		col, ok := layout[f]
		if !ok {
			return "", 0, false, nil
		}
		off := rowBase + col.Offset
		switch col.Type {
		case schema.TypeFloat32:
			fv, err := v.ReadF32LE(off)
			if err != nil {
				return "", 0, false, ErrRecordNotFound
			}
			return "", fv, true, nil
		case schema.TypeString:
			ptr, err := v.ReadU32LE(off)
			if err != nil {
				return "", 0, false, ErrRecordNotFound
			}
			if ptr == 0 {
				return "", 0, false, nil
			}
			s, err := v.ReadPString(ptr + col.PtrOffset)
			if err != nil {
				return "", 0, false, ErrRecordNotFound
			}
			return s, 0, true, nil
		default:
			return "", 0, false, ErrRecordNotFound
		}
	}

	rec := Record{IP: queried.String()}

	switch h.product {
	case schema.ProductLocation:
		l := &LocationDb{}
		var err error
		if l.CountryCode, _, _, err = get("country_code"); err != nil {
			return Record{}, err
		}
		if l.CountryName, _, _, err = get("country_name"); err != nil {
			return Record{}, err
		}
		if l.Region, _, _, err = get("region"); err != nil {
			return Record{}, err
		}
		if l.City, _, _, err = get("city"); err != nil {
			return Record{}, err
		}
		if _, fv, ok, err := get("latitude"); err != nil {
			return Record{}, err
		} else if ok {
			l.Latitude = &fv
		}
		if _, fv, ok, err := get("longitude"); err != nil {
			return Record{}, err
		} else if ok {
			l.Longitude = &fv
		}
		if l.ZipCode, _, _, err = get("zip_code"); err != nil {
			return Record{}, err
		}
		if l.TimeZone, _, _, err = get("time_zone"); err != nil {
			return Record{}, err
		}
		if l.ISP, _, _, err = get("isp"); err != nil {
			return Record{}, err
		}
		if l.Domain, _, _, err = get("domain"); err != nil {
			return Record{}, err
		}
		if l.NetSpeed, _, _, err = get("net_speed"); err != nil {
			return Record{}, err
		}
		if l.IDDCode, _, _, err = get("idd_code"); err != nil {
			return Record{}, err
		}
		if l.AreaCode, _, _, err = get("area_code"); err != nil {
			return Record{}, err
		}
		if l.WeatherStationCode, _, _, err = get("weather_station_code"); err != nil {
			return Record{}, err
		}
		if l.WeatherStationName, _, _, err = get("weather_station_name"); err != nil {
			return Record{}, err
		}
		if l.MCC, _, _, err = get("mcc"); err != nil {
			return Record{}, err
		}
		if l.MNC, _, _, err = get("mnc"); err != nil {
			return Record{}, err
		}
		if l.MobileBrand, _, _, err = get("mobile_brand"); err != nil {
			return Record{}, err
		}
		if _, fv, ok, err := get("elevation"); err != nil {
			return Record{}, err
		} else if ok {
			l.Elevation = &fv
		}
		if l.UsageType, _, _, err = get("usage_type"); err != nil {
			return Record{}, err
		}
		if l.AddressType, _, _, err = get("address_type"); err != nil {
			return Record{}, err
		}
		if l.Category, _, _, err = get("category"); err != nil {
			return Record{}, err
		}
		if l.District, _, _, err = get("district"); err != nil {
			return Record{}, err
		}
		if l.ASN, _, _, err = get("asn"); err != nil {
			return Record{}, err
		}
		if l.ASName, _, _, err = get("as_name"); err != nil {
			return Record{}, err
		}
		rec.Location = l

	case schema.ProductProxy:
		p := &ProxyDb{}
		var err error
		if p.CountryCode, _, _, err = get("country_code"); err != nil {
			return Record{}, err
		}
		if p.CountryName, _, _, err = get("country_name"); err != nil {
			return Record{}, err
		}
		if p.ProxyType, _, _, err = get("proxy_type"); err != nil {
			return Record{}, err
		}
		if p.Region, _, _, err = get("region"); err != nil {
			return Record{}, err
		}
		if p.City, _, _, err = get("city"); err != nil {
			return Record{}, err
		}
		if p.ISP, _, _, err = get("isp"); err != nil {
			return Record{}, err
		}
		if p.Domain, _, _, err = get("domain"); err != nil {
			return Record{}, err
		}
		if p.UsageType, _, _, err = get("usage_type"); err != nil {
			return Record{}, err
		}
		if p.ASN, _, _, err = get("asn"); err != nil {
			return Record{}, err
		}
		if p.ASName, _, _, err = get("as_name"); err != nil {
			return Record{}, err
		}
		if p.LastSeen, _, _, err = get("last_seen"); err != nil {
			return Record{}, err
		}
		if p.Threat, _, _, err = get("threat"); err != nil {
			return Record{}, err
		}
		if p.Provider, _, _, err = get("provider"); err != nil {
			return Record{}, err
		}
		p.IsProxy = classifyProxyType(p.ProxyType)
		rec.Proxy = p
	}

	return rec, nil
}

// classifyProxyType implements spec §4.6's is_proxy derivation,
// grounded on ip2location-ip2proxy-go/ip2proxy.go's equivalent switch
// over the proxy_type column.
func classifyProxyType(proxyType string) ProxyStatus {
	switch proxyType {
	case "", "-":
		return NotAProxy
	case "DCH", "SES":
		return IsADataCenterIPOrSearchEngineRobot
	default:
		return IsAProxy
	}
}
