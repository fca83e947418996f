// Package fristark provides a from-scratch FRI (Fast Reed-Solomon IOP of
// Proximity) prover and verifier over the Goldilocks prime field.
//
// FRI is the low-degree test at the heart of a STARK: given an oracle
// (here, a Reed-Solomon codeword) the prover claims agrees with some
// polynomial of bounded degree, FRI lets a verifier check that claim by
// querying a small, randomly chosen number of positions rather than
// reading the whole codeword.
//
// # Features
//
//   - Prime-field arithmetic over the Goldilocks prime (2^64 - 2^32 + 1)
//   - Univariate polynomial algebra: division, interpolation, zerofiers
//   - A binary Merkle commitment scheme with a single-leaf special case
//   - A Fiat-Shamir transcript shared verbatim by prover and verifier
//   - The commit-fold-query FRI protocol itself
//
// # Quick Start
//
// Proving and verifying that a codeword is close to a low-degree
// polynomial:
//
//	stark, err := fristark.NewStark(64, 4, 4)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	codeword := stark.Config().EvalDomain() // replace with a real codeword
//	proof, err := stark.Prove(codeword)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ok, err := stark.Verify(proof)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if ok {
//		fmt.Println("proof accepted")
//	}
//
// # Architecture
//
//   - pkg/fristark/: public API (this package): Stark, errors
//   - internal/fristark/field/: prime-field arithmetic
//   - internal/fristark/poly/: polynomial algebra and the colinearity test
//   - internal/fristark/merkle/: Merkle commitment
//   - internal/fristark/transcript/: the Fiat-Shamir proof stream
//   - internal/fristark/fri/: the FRI prover and verifier
//   - internal/fristark/logging/: structured diagnostic logging
//
// Implementation details under internal/ can change without breaking the
// public API.
//
// # References
//
//   - FRI paper: https://eccc.weizmann.ac.il/report/2017/134/
//   - "Anatomy of a STARK", a tutorial series this protocol follows closely
package fristark
