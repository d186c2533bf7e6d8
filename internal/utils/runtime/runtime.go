package runtime

// Must panics if err is non-nil. Used for binds that cannot fail at runtime.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
