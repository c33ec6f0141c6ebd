package errx

// WrapStorage maps durable session storage errors to the unified Error type.
// A missing key is not an error at this layer; implementations signal it with
// a found=false return instead.
func WrapStorage(err error) *Error {
	if err == nil {
		return nil
	}
	return New(err, KindStorage, 0, StorageErrorMessage)
}
