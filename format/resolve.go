package format

// StandardFourCC maps formats that only exist inside this module back to the fourcc code other
// processes understand
func StandardFourCC(f Format) Format {
	if f == YVU420Android {
		return YVU420
	}

	return f
}

// IsFlexible returns true for the placeholder formats that must be resolved to a concrete format
// before a buffer can be laid out
func IsFlexible(f Format) bool {
	return f == FlexImplementationDefined || f == FlexYCbCr420888
}
