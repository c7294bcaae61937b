package tdb_test

import (
	"fmt"
	"log"

	tdb "github.com/flarmnet/go-tdb"
	"github.com/flarmnet/go-tdb/model"
)

// Example_lookup builds a database and finds a record by its flarm id.
func Example_lookup() {
	db := tdb.New(1, []model.Record{
		{FlarmID: 0x3EE3C7, Frequency: 123500, CallSign: "SG", Airfield: "EDKA", PlaneType: "LS6a", Registration: "D-0816"},
		{FlarmID: 0x000C48, CallSign: "7L", PlaneType: "Duo Discus"},
	})

	record, err := db.LookupByFlarmID(0x3EE3C7)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%s %s %s %s\n", record.FlarmID, record.CallSign, record.Registration, record.FormatFrequency())
	// Output:
	// 3EE3C7 SG D-0816 123.500
}

// ExampleParse decodes a complete file image back into a database.
func ExampleParse() {
	db := tdb.New(4, []model.Record{
		{FlarmID: 0x00ABCD, CallSign: "D1", PlaneType: "ASK 21"},
	})
	data, err := db.Serialize()
	if err != nil {
		log.Fatal(err)
	}

	parsed, err := tdb.Parse(data)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("version %d, %d records, %d bytes\n", parsed.Version(), parsed.Len(), len(data))
	// Output:
	// version 4, 1 records, 120 bytes
}
