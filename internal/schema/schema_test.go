package schema

import "testing"

func TestResolveDB1(t *testing.T) {
	l, err := Resolve(ProductLocation, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := l["country_code"]; !ok {
		t.Fatal("DB1 must have country_code")
	}
	if _, ok := l["city"]; ok {
		t.Fatal("DB1 must not have city")
	}
	if _, ok := l["latitude"]; ok {
		t.Fatal("DB1 must not have latitude")
	}
}

func TestResolveDB11HasGeo(t *testing.T) {
	l, err := Resolve(ProductLocation, 11, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []Field{"country_code", "region", "city", "latitude", "longitude", "isp", "domain"} {
		if _, ok := l[f]; !ok {
			t.Fatalf("DB11 must have %s", f)
		}
	}
	if _, ok := l["mcc"]; ok {
		t.Fatal("DB11 must not have mcc")
	}
}

func TestResolveDB26Extensions(t *testing.T) {
	l, err := Resolve(ProductLocation, 26, false)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range []Field{"district", "asn", "as_name"} {
		if _, ok := l[f]; !ok {
			t.Fatalf("DB26 must have %s", f)
		}
	}
}

func TestResolveOffsetsIPv4VsIPv6(t *testing.T) {
	l4, err := Resolve(ProductLocation, 11, false)
	if err != nil {
		t.Fatal(err)
	}
	l6, err := Resolve(ProductLocation, 11, true)
	if err != nil {
		t.Fatal(err)
	}
	// column 2 (country_code) sits right after IP_FROM: offset should
	// equal the table's IP_FROM width.
	if got, want := l4["country_code"].Offset, uint32(4); got != want {
		t.Fatalf("ipv4 country_code offset = %d, want %d", got, want)
	}
	if got, want := l6["country_code"].Offset, uint32(16); got != want {
		t.Fatalf("ipv6 country_code offset = %d, want %d", got, want)
	}
}

func TestResolveProxyPX1(t *testing.T) {
	l, err := Resolve(ProductProxy, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := l["country_code"]; !ok {
		t.Fatal("PX1 must have country_code")
	}
	if _, ok := l["proxy_type"]; ok {
		t.Fatal("PX1 must not have proxy_type")
	}
}

func TestResolveOutOfRange(t *testing.T) {
	if _, err := Resolve(ProductLocation, 0, false); err == nil {
		t.Fatal("db_type 0 must be rejected")
	}
	if _, err := Resolve(ProductLocation, 27, false); err == nil {
		t.Fatal("db_type past max must be rejected")
	}
}

func TestMaxType(t *testing.T) {
	if got, want := MaxType(ProductLocation), uint8(26); got != want {
		t.Fatalf("MaxType(Location) = %d, want %d", got, want)
	}
	if got, want := MaxType(ProductProxy), uint8(11); got != want {
		t.Fatalf("MaxType(Proxy) = %d, want %d", got, want)
	}
}
