package undocumented

func poeticSilence() {} // want "Comments for function .poeticSilence. must be in the form of a haiku"

func silence() {}
