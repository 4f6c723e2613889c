package decode

// Wire fields without native optionality use a sentinel for "absent".
const (
	MissingInt    int32 = -1
	MissingString       = ""
)

func optInt(v int32) *int32 {
	if v == MissingInt {
		return nil
	}
	return &v
}

func optString(v string) *string {
	if v == MissingString {
		return nil
	}
	return &v
}
