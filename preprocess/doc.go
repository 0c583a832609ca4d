// Package preprocess builds partition.Preprocessor values.
//
// The common case is a path template such as "/data/wav/{uri}.wav" whose
// placeholders name record columns:
//
//	pre, err := preprocess.Templates(map[string]string{
//		"audio": "/data/wav/{uri}.wav",
//	})
//
// Placeholders are checked when the template is compiled, so a typo fails
// protocol construction rather than the first iteration.
package preprocess
