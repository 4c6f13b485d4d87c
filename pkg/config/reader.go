package config

import "errors"

// Reader reads a group of variables from one Source and collects every
// missing required key, so a snapshot is either complete or rejected as a whole.
//
//	r := config.NewReader(config.OSEnv{})
//	cfg := AppConfig{
//		Secret: r.Required("JWT_SECRET"),
//		Port:   r.Int("PORT", 8787),
//	}
//	if err := r.Err(); err != nil {
//		return AppConfig{}, err
//	}
type Reader struct {
	src  Source
	errs []error
}

// NewReader creates a Reader over src. A nil src reads the process environment.
func NewReader(src Source) *Reader {
	if src == nil {
		src = OSEnv{}
	}
	return &Reader{src: src}
}

// Required returns the value of key and records a MissingVarError when absent.
func (r *Reader) Required(key string) string {
	v, err := Required(r.src, key)
	if err != nil {
		r.errs = append(r.errs, err)
	}
	return v
}

func (r *Reader) Optional(key, def string) string { return Optional(r.src, key, def) }

func (r *Reader) Bool(key string, def bool) bool { return Bool(r.src, key, def) }

func (r *Reader) Int(key string, def int) int { return Int(r.src, key, def) }

// Err returns all recorded errors joined together, or nil.
func (r *Reader) Err() error {
	return errors.Join(r.errs...)
}
