/*
Package estimators provides complexity estimators for the hard problems
underlying code-based and multivariate cryptography. It implements a pure Go
bit-complexity calculator for the multivariate quadratic (MQ), rank syndrome
decoding (RSD) and permutation code equivalence (PE) problems, together with
the best known algorithms solving them.
*/
package estimators
