/*
The reducer has the purpose to filter out all conflict sets which can't influence the minimal hitting sets of a family.
A conflict set which contains another conflict set of the family is hit by every set hitting the smaller one.
Dropping it is a fast preflight-filter which reduces the amount of nodes in the HS-tree and of clauses in the CNF
equation used for verification.
*/
package reducer
