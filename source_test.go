package godec_test

import (
	"testing"

	godec "github.com/godec-io/godec"
)

func TestDriverSwap(t *testing.T) {
	defer godec.UseDefaultJSONDriver()

	src := `{"z":1,"a":[true,null,"s"],"n":9007199254740993}`
	want, err := godec.ParseString(src)
	if err != nil {
		t.Fatalf("go-json driver: %v", err)
	}

	godec.UseStdlibJSONDriver()
	got, err := godec.ParseString(src)
	if err != nil {
		t.Fatalf("stdlib driver: %v", err)
	}
	if got.Render(0) != want.Render(0) {
		t.Fatalf("drivers disagree:\ngo-json: %s\nstdlib:  %s", want.Render(0), got.Render(0))
	}
}

func TestStdlibDriver_Enforcement(t *testing.T) {
	defer godec.UseDefaultJSONDriver()
	godec.UseStdlibJSONDriver()

	opt := godec.ParseOpt{OnDuplicateKey: godec.DupError}
	_, err := godec.ParseString(`{"a":1,"a":2}`, opt)
	if err == nil {
		t.Fatalf("expected a duplicate key error")
	}
	if code, ok := godec.IsLimitError(err); !ok || code != "duplicate_key" {
		t.Fatalf("got %v (%v)", code, err)
	}
}

func TestSetJSONDriver_IgnoresNil(t *testing.T) {
	godec.SetJSONDriver(nil)
	if _, err := godec.ParseString(`1`); err != nil {
		t.Fatalf("the driver must survive a nil set: %v", err)
	}
}
