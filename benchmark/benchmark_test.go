package benchmark

import (
	"testing"

	"github.com/stretchr/testify/assert"

	tdb "github.com/flarmnet/go-tdb"
	"github.com/flarmnet/go-tdb/model"
)

var (
	db      *tdb.Database
	data    []byte
	records []model.Record
)

func init() {
	records = make([]model.Record, 1000)
	for i := range records {
		records[i] = model.Record{
			FlarmID:      model.FlarmID(0x100000 + i*7),
			Frequency:    123500,
			CallSign:     "SG",
			PilotName:    "John Doe",
			Airfield:     "EDKA",
			PlaneType:    "LS6a",
			Registration: "D-0816",
		}
	}
	db = tdb.New(1, records)

	var err error
	data, err = db.Serialize()
	if err != nil {
		panic(err)
	}
}

// Benchmark_Parse .
func Benchmark_Parse(b *testing.B) {
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := tdb.Parse(data)
		assert.Nil(b, err)
	}
}

// Benchmark_LookupByFlarmID .
func Benchmark_LookupByFlarmID(b *testing.B) {
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := db.LookupByFlarmID(records[i%len(records)].FlarmID)
		assert.Nil(b, err)
	}
}

// Benchmark_New .
func Benchmark_New(b *testing.B) {
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		built := tdb.New(1, records)
		assert.NotNil(b, built)
	}
}

// Benchmark_Serialize .
func Benchmark_Serialize(b *testing.B) {
	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		_, err := db.Serialize()
		assert.Nil(b, err)
	}
}
