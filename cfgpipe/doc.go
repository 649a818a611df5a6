// Package cfgpipe implements the grammar half of pathql: CFG text parsing,
// Weak Chomsky Normal Form conversion, Extended CFG, and Recursive State
// Machine assembly.
//
//	ParseCFG   — grammar text -> CFG
//	CFG.ToWCNF — remove-useless -> eliminate-unit -> remove-useless -> decompose
//	CFG.ToCNF  — ToWCNF's pipeline plus nullable-substitution, for package cyk
//	CFGToECFG  — CFG -> ECFG (regex-per-variable)
//	ParseECFG  — ECFG text -> ECFG
//	ECFGToRSM  — ECFG -> RSM (one minimal-DFA box per variable)
package cfgpipe
