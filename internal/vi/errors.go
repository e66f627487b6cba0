package vi

// invalidCommandMessage is the one diagnostic line §7 specifies for a
// parse error. It is written to Editor.errOut verbatim. Every other
// fallible operation in this package reports failure as a bool per the
// motion/action contract (§4.2, §4.3); host-collaborator calls that can
// fail for a reason worth naming (Searcher.Look, Host.Persist) surface
// whatever error the host itself returns, unwrapped.
const invalidCommandMessage = "! invalid command\n"
