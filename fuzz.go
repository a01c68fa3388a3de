// +build gofuzz

package amqp

// FuzzUnmarshal decodes data as a stream of frames and re-encodes every
// frame that decodes cleanly.
func FuzzUnmarshal(data []byte) int {
	r := NewFrameReader(data)
	decoded := 0
	for {
		channel, frame, ok, err := r.Next()
		if err != nil || !ok {
			break
		}
		_, err = Marshal(channel, frame)
		if err != nil {
			// heartbeats and protocol headers ignore the channel, the
			// rest must re-encode
			if _, isMethod := frame.(Method); isMethod && channel != 0 {
				panic(err)
			}
		}
		decoded++
	}
	if decoded > 0 {
		return 1
	}
	return 0
}

// FuzzFieldValue decodes data as a tagged value and a field table.
func FuzzFieldValue(data []byte) int {
	types := []Type{
		TypeBoolean, TypeShortShortInt, TypeOctet, TypeShortInt, TypeShort,
		TypeLongInt, TypeLong, TypeLongLongInt, TypeLongLong, TypeFloat,
		TypeDouble, TypeDecimal, TypeShortString, TypeLongString,
		TypeFieldArray, TypeTimestamp, TypeFieldTable, TypeVoid, TypeByteArray,
	}
	for _, t := range types {
		DecodeValue(t, data)
	}
	DecodeFieldValue(data)
	ReadPropertyFlags(data)

	_, table, err := DecodeTable(data)
	if err != nil {
		return 0
	}
	_, err = EncodeTable(table)
	if err != nil {
		return 0
	}
	return 1
}
