// Package config holds haikulint settings: which definitions are subjects of
// the haiku rule and which syllable overrides fix the estimator.
//
// Settings come from a YAML file (see [Load]) and can be tuned further by
// analyzer or CLI flags before [Config.Session] turns them into a ready to use
// validation session. Example file:
//
//	prefix: poetic
//	marker: poet
//	selector: prefix-or-call
//	require_doc: true
//	output_funcs:
//	  - '"example.com/poetry/stage".Say'
//	  - '"example.com/poetry/stage".Mic.Announce'
//	overrides:
//	  fire: 2
//	  hour: 2
package config
