package ir

// EngineVersion is recorded on every ledger run.
const EngineVersion = "0.1.0"
