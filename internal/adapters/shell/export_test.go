package shell

var ResolveEnvironment = resolveEnvironment
