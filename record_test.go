package ip2geo

import (
	"encoding/binary"
	"testing"
)

func TestClassifyProxyType(t *testing.T) {
	cases := map[string]ProxyStatus{
		"":    NotAProxy,
		"-":   NotAProxy,
		"DCH": IsADataCenterIPOrSearchEngineRobot,
		"SES": IsADataCenterIPOrSearchEngineRobot,
		"VPN": IsAProxy,
		"TOR": IsAProxy,
	}
	for in, want := range cases {
		if got := classifyProxyType(in); got != want {
			t.Errorf("classifyProxyType(%q) = %v, want %v", in, got, want)
		}
	}
}

// buildProxyPX2Fixture builds a single-row PX2 database (proxy_type,
// country_code, country_name present — PX2's schema packs proxy_type
// at column 2, ahead of the shared country_code/country_name pointer
// at column 3) to exercise the proxy materializer and its is_proxy
// derivation end-to-end.
func buildProxyPX2Fixture(t *testing.T, proxyType string) []byte {
	t.Helper()

	const headerLen = 64
	const rowWidth = 4 + 4*2 // IP_FROM + proxy_type + country(shared)
	const ipv4BaseAddr = headerLen + 1

	// "US" is a length-prefixed string (1+2 bytes); country_name's
	// str@3 pointer offset reads the next string immediately after it.
	countryOff := headerLen + rowWidth // 0-indexed
	countryNameOff := countryOff + 3
	proxyTypeOff := countryNameOff + 1 + len("United States")
	total := proxyTypeOff + 1 + len(proxyType)

	buf := make([]byte, total)
	buf[0] = 2 // product_kind: proxy
	buf[1] = 2 // db_type: PX2
	buf[2] = 3 // column_count: IP_FROM, proxy_type, country
	buf[3] = 24
	buf[4] = 1
	buf[5] = 1
	binary.LittleEndian.PutUint32(buf[6:], 1) // ipv4_row_count
	binary.LittleEndian.PutUint32(buf[10:], uint32(ipv4BaseAddr))

	binary.LittleEndian.PutUint32(buf[headerLen:], 0)                    // IP_FROM = 0.0.0.0
	binary.LittleEndian.PutUint32(buf[headerLen+4:], uint32(proxyTypeOff+1)) // proxy_type ptr
	binary.LittleEndian.PutUint32(buf[headerLen+8:], uint32(countryOff+1))  // country ptr

	putStr := func(off0 int, s string) {
		buf[off0] = byte(len(s))
		copy(buf[off0+1:], s)
	}
	putStr(countryOff, "US")
	putStr(countryNameOff, "United States")
	putStr(proxyTypeOff, proxyType)

	return buf
}

func TestMaterializeProxyIsProxy(t *testing.T) {
	db := openFixture(t, buildProxyPX2Fixture(t, "VPN"))
	rec, err := db.LookupString("1.2.3.4")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Proxy == nil {
		t.Fatal("expected a Proxy record")
	}
	if rec.Proxy.CountryCode != "US" {
		t.Fatalf("country_code = %q, want US", rec.Proxy.CountryCode)
	}
	if rec.Proxy.IsProxy != IsAProxy {
		t.Fatalf("IsProxy = %v, want IsAProxy", rec.Proxy.IsProxy)
	}
}

func TestMaterializeProxyNotAProxy(t *testing.T) {
	db := openFixture(t, buildProxyPX2Fixture(t, "-"))
	rec, err := db.LookupString("1.2.3.4")
	if err != nil {
		t.Fatal(err)
	}
	if rec.Proxy.IsProxy != NotAProxy {
		t.Fatalf("IsProxy = %v, want NotAProxy", rec.Proxy.IsProxy)
	}
}
