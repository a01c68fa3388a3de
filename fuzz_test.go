package amqp

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

var fuzzTypes = []Type{
	TypeBoolean, TypeShortShortInt, TypeOctet, TypeShortInt, TypeShort,
	TypeLongInt, TypeLong, TypeLongLongInt, TypeLongLong, TypeFloat,
	TypeDouble, TypeDecimal, TypeShortString, TypeLongString,
	TypeFieldArray, TypeTimestamp, TypeFieldTable, TypeVoid, TypeByteArray,
}

func fuzzUnmarshal(data []byte) {
	r := NewFrameReader(data)
	for {
		channel, frame, ok, err := r.Next()
		if err != nil || !ok {
			break
		}
		_, _ = Marshal(channel, frame)
	}

	for _, t := range fuzzTypes {
		_, _, _ = DecodeValue(t, data)
	}
	_, _, _ = DecodeFieldValue(data)
	_, _, _ = DecodeArray(data)
	_, _, _ = ReadPropertyFlags(data)
	if _, table, err := DecodeTable(data); err == nil {
		_, _ = EncodeTable(table)
	}
}

func TestFuzzMarshalCrashers(t *testing.T) {
	tests := []string{
		0: "\x01\x00\x01\xff\xff\xff\xff\xce",
		1: "AMQP",
		2: "AMQP\x00\x00\x09",
		3: "\xff\xff\xff\xff",
		4: "\x00\x00\x00\x07\x01aF\x00\x00\x00\xff",
		5: "\x00\x00\x00\x0a\x01aA\x00\x00\x00\x04AAAA",
		6: "\x00\x00\x00\x03\xffab",
		7: "\x00\x01\x00\x01\x00\x01\x00\x01\x00\x01\x00\x00",
		8: "\x02\x00\x01\x00\x00\x00\x10\x00\x3c\x00\x00\x00\x00\x00\x00\x00\x00\x00\x00\xff\xff\x00\x00\xce",
		9: "\x01\x00\x00\x00\x00\x00\x0c\x00\x0a\x00\x0a\x00\x09\xff\xff\xff\xff\x00\x00\xce",
		10: "\x01\x00\x01\x00\x00\x00\x0c\x00\x3c\x00\x28\x00\x00\xff" + "abc" +
			"\x00\x00\xce",
		11: "\x00\x00\x00\x06\x01aT\x00\x00\x00",
		12: "\x00\x00\x00\x05\x01aD\x02\x00",
		13: "\x00\x00\x00\x08\x01ax\x7f\xff\xff\xff\x00",
		14: "\x08\x00\x00\x00\x00\x00\x00\xce\x08\x00\x00\x00\x00\x00\x00",
		15: "\x03\x00\x01\x00\x00\x00\x00\xce\x03\x00\x01\x00\x00\x00\x01",
	}

	for i, tt := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			fuzzUnmarshal([]byte(tt))
		})
	}
}

func TestFuzzMarshalCorpus(t *testing.T) {
	if os.Getenv("TEST_CORPUS") == "" {
		t.Skip("set TEST_CORPUS to enable")
	}

	paths, err := filepath.Glob("testdata/fuzz/marshal/corpus/*")
	if err != nil {
		t.Fatal(err)
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatal(err)
			}

			fuzzUnmarshal(data)
		})
	}
}

func FuzzFrameReader(f *testing.F) {
	for _, tt := range exampleFrames {
		b, err := Marshal(tt.channel, tt.frame)
		if err != nil {
			f.Fatal(err)
		}
		f.Add(b)
	}
	f.Add([]byte("AMQP\x00\x00\x09\x01"))

	f.Fuzz(func(t *testing.T, data []byte) {
		fuzzUnmarshal(data)
	})
}
