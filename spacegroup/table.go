// Package spacegroup: the Hall-setting reference table.
//
// 530 tabulated settings of the 230 space-group types: Hall symbols
// after Hall (1981), short Hermann-Mauguin and Schoenflies symbols,
// setting choices (monoclinic axis/cell, orthorhombic axis
// permutation, origin choice, hexagonal/rhombohedral axes). The
// standard flag marks the one row per type used for classification.

package spacegroup

// tableRow is one Hall setting.
type tableRow struct {
	number        int
	international string
	schoenflies   string
	hall          string
	choice        string
	pointGroup    string
	system        CrystalSystem
	centering     byte
	standard      bool
}

var hallTable = [...]tableRow{
	0: {},
	1: {1, "P1", "C1^1", "P 1", "", "1", Triclinic, 'P', true},
	2: {2, "P-1", "Ci^1", "-P 1", "", "-1", Triclinic, 'P', true},
	3: {3, "P2", "C2^1", "P 2y", "b", "2", Monoclinic, 'P', true},
	4: {3, "P2", "C2^1", "P 2z", "c", "2", Monoclinic, 'P', false},
	5: {3, "P2", "C2^1", "P 2x", "a", "2", Monoclinic, 'P', false},
	6: {4, "P2_1", "C2^2", "P 2yb", "b", "2", Monoclinic, 'P', true},
	7: {4, "P2_1", "C2^2", "P 2zc", "c", "2", Monoclinic, 'P', false},
	8: {4, "P2_1", "C2^2", "P 2xa", "a", "2", Monoclinic, 'P', false},
	9: {5, "C2", "C2^3", "C 2y", "b1", "2", Monoclinic, 'C', true},
	10: {5, "C2", "C2^3", "I 2y", "b2", "2", Monoclinic, 'I', false},
	11: {5, "C2", "C2^3", "A 2y", "b3", "2", Monoclinic, 'A', false},
	12: {5, "C2", "C2^3", "A 2z", "c1", "2", Monoclinic, 'A', false},
	13: {5, "C2", "C2^3", "I 2z", "c2", "2", Monoclinic, 'I', false},
	14: {5, "C2", "C2^3", "B 2z", "c3", "2", Monoclinic, 'B', false},
	15: {5, "C2", "C2^3", "B 2x", "a1", "2", Monoclinic, 'B', false},
	16: {5, "C2", "C2^3", "I 2x", "a2", "2", Monoclinic, 'I', false},
	17: {5, "C2", "C2^3", "C 2x", "a3", "2", Monoclinic, 'C', false},
	18: {6, "Pm", "Cs^1", "P -2y", "b", "m", Monoclinic, 'P', true},
	19: {6, "Pm", "Cs^1", "P -2z", "c", "m", Monoclinic, 'P', false},
	20: {6, "Pm", "Cs^1", "P -2x", "a", "m", Monoclinic, 'P', false},
	21: {7, "Pc", "Cs^2", "P -2yc", "b1", "m", Monoclinic, 'P', true},
	22: {7, "Pc", "Cs^2", "P -2ya", "b2", "m", Monoclinic, 'P', false},
	23: {7, "Pc", "Cs^2", "P -2yac", "b3", "m", Monoclinic, 'P', false},
	24: {7, "Pc", "Cs^2", "P -2za", "c1", "m", Monoclinic, 'P', false},
	25: {7, "Pc", "Cs^2", "P -2zb", "c2", "m", Monoclinic, 'P', false},
	26: {7, "Pc", "Cs^2", "P -2zab", "c3", "m", Monoclinic, 'P', false},
	27: {7, "Pc", "Cs^2", "P -2xb", "a1", "m", Monoclinic, 'P', false},
	28: {7, "Pc", "Cs^2", "P -2xc", "a2", "m", Monoclinic, 'P', false},
	29: {7, "Pc", "Cs^2", "P -2xbc", "a3", "m", Monoclinic, 'P', false},
	30: {8, "Cm", "Cs^3", "C -2y", "b1", "m", Monoclinic, 'C', true},
	31: {8, "Cm", "Cs^3", "I -2y", "b2", "m", Monoclinic, 'I', false},
	32: {8, "Cm", "Cs^3", "A -2y", "b3", "m", Monoclinic, 'A', false},
	33: {8, "Cm", "Cs^3", "A -2z", "c1", "m", Monoclinic, 'A', false},
	34: {8, "Cm", "Cs^3", "I -2z", "c2", "m", Monoclinic, 'I', false},
	35: {8, "Cm", "Cs^3", "B -2z", "c3", "m", Monoclinic, 'B', false},
	36: {8, "Cm", "Cs^3", "B -2x", "a1", "m", Monoclinic, 'B', false},
	37: {8, "Cm", "Cs^3", "I -2x", "a2", "m", Monoclinic, 'I', false},
	38: {8, "Cm", "Cs^3", "C -2x", "a3", "m", Monoclinic, 'C', false},
	39: {9, "Cc", "Cs^4", "C -2yc", "b1", "m", Monoclinic, 'C', true},
	40: {9, "Cc", "Cs^4", "I -2ybc", "b2", "m", Monoclinic, 'I', false},
	41: {9, "Cc", "Cs^4", "A -2yac", "b3", "m", Monoclinic, 'A', false},
	42: {9, "Cc", "Cs^4", "A -2za", "c1", "m", Monoclinic, 'A', false},
	43: {9, "Cc", "Cs^4", "I -2zb", "c2", "m", Monoclinic, 'I', false},
	44: {9, "Cc", "Cs^4", "B -2zbc", "c3", "m", Monoclinic, 'B', false},
	45: {9, "Cc", "Cs^4", "B -2xb", "a1", "m", Monoclinic, 'B', false},
	46: {9, "Cc", "Cs^4", "I -2xc", "a2", "m", Monoclinic, 'I', false},
	47: {9, "Cc", "Cs^4", "C -2xbc", "a3", "m", Monoclinic, 'C', false},
	48: {10, "P2/m", "C2h^1", "-P 2y", "b", "2/m", Monoclinic, 'P', true},
	49: {10, "P2/m", "C2h^1", "-P -2z", "c", "2/m", Monoclinic, 'P', false},
	50: {10, "P2/m", "C2h^1", "-P -2x", "a", "2/m", Monoclinic, 'P', false},
	51: {11, "P2_1/m", "C2h^2", "-P 2yb", "b", "2/m", Monoclinic, 'P', true},
	52: {11, "P2_1/m", "C2h^2", "-P -2zc", "c", "2/m", Monoclinic, 'P', false},
	53: {11, "P2_1/m", "C2h^2", "-P -2xa", "a", "2/m", Monoclinic, 'P', false},
	54: {12, "C2/m", "C2h^3", "-C 2y", "b1", "2/m", Monoclinic, 'C', true},
	55: {12, "C2/m", "C2h^3", "-I -2y", "b2", "2/m", Monoclinic, 'I', false},
	56: {12, "C2/m", "C2h^3", "-A -2y", "b3", "2/m", Monoclinic, 'A', false},
	57: {12, "C2/m", "C2h^3", "-A -2z", "c1", "2/m", Monoclinic, 'A', false},
	58: {12, "C2/m", "C2h^3", "-I -2z", "c2", "2/m", Monoclinic, 'I', false},
	59: {12, "C2/m", "C2h^3", "-B -2z", "c3", "2/m", Monoclinic, 'B', false},
	60: {12, "C2/m", "C2h^3", "-B -2x", "a1", "2/m", Monoclinic, 'B', false},
	61: {12, "C2/m", "C2h^3", "-I -2x", "a2", "2/m", Monoclinic, 'I', false},
	62: {12, "C2/m", "C2h^3", "-C -2x", "a3", "2/m", Monoclinic, 'C', false},
	63: {13, "P2/c", "C2h^4", "-P 2yc", "b1", "2/m", Monoclinic, 'P', true},
	64: {13, "P2/c", "C2h^4", "-P -2ya", "b2", "2/m", Monoclinic, 'P', false},
	65: {13, "P2/c", "C2h^4", "-P -2yac", "b3", "2/m", Monoclinic, 'P', false},
	66: {13, "P2/c", "C2h^4", "-P -2za", "c1", "2/m", Monoclinic, 'P', false},
	67: {13, "P2/c", "C2h^4", "-P -2zb", "c2", "2/m", Monoclinic, 'P', false},
	68: {13, "P2/c", "C2h^4", "-P -2zab", "c3", "2/m", Monoclinic, 'P', false},
	69: {13, "P2/c", "C2h^4", "-P -2xb", "a1", "2/m", Monoclinic, 'P', false},
	70: {13, "P2/c", "C2h^4", "-P -2xc", "a2", "2/m", Monoclinic, 'P', false},
	71: {13, "P2/c", "C2h^4", "-P -2xbc", "a3", "2/m", Monoclinic, 'P', false},
	72: {14, "P2_1/c", "C2h^5", "-P 2ybc", "b1", "2/m", Monoclinic, 'P', true},
	73: {14, "P2_1/c", "C2h^5", "-P -2yab", "b2", "2/m", Monoclinic, 'P', false},
	74: {14, "P2_1/c", "C2h^5", "-P -2yabc", "b3", "2/m", Monoclinic, 'P', false},
	75: {14, "P2_1/c", "C2h^5", "-P -2zac", "c1", "2/m", Monoclinic, 'P', false},
	76: {14, "P2_1/c", "C2h^5", "-P -2zbc", "c2", "2/m", Monoclinic, 'P', false},
	77: {14, "P2_1/c", "C2h^5", "-P -2zabc", "c3", "2/m", Monoclinic, 'P', false},
	78: {14, "P2_1/c", "C2h^5", "-P -2xab", "a1", "2/m", Monoclinic, 'P', false},
	79: {14, "P2_1/c", "C2h^5", "-P -2xac", "a2", "2/m", Monoclinic, 'P', false},
	80: {14, "P2_1/c", "C2h^5", "-P -2xabc", "a3", "2/m", Monoclinic, 'P', false},
	81: {15, "C2/c", "C2h^6", "-C 2yc", "b1", "2/m", Monoclinic, 'C', true},
	82: {15, "C2/c", "C2h^6", "-I -2ybc", "b2", "2/m", Monoclinic, 'I', false},
	83: {15, "C2/c", "C2h^6", "-A -2yac", "b3", "2/m", Monoclinic, 'A', false},
	84: {15, "C2/c", "C2h^6", "-A -2za", "c1", "2/m", Monoclinic, 'A', false},
	85: {15, "C2/c", "C2h^6", "-I -2zb", "c2", "2/m", Monoclinic, 'I', false},
	86: {15, "C2/c", "C2h^6", "-B -2zbc", "c3", "2/m", Monoclinic, 'B', false},
	87: {15, "C2/c", "C2h^6", "-B -2xb", "a1", "2/m", Monoclinic, 'B', false},
	88: {15, "C2/c", "C2h^6", "-I -2xc", "a2", "2/m", Monoclinic, 'I', false},
	89: {15, "C2/c", "C2h^6", "-C -2xbc", "a3", "2/m", Monoclinic, 'C', false},
	90: {16, "P222", "D2^1", "P 2 2", "abc", "222", Orthorhombic, 'P', true},
	91: {17, "P222_1", "D2^2", "P 2c 2", "abc", "222", Orthorhombic, 'P', true},
	92: {17, "P222_1", "D2^2", "P 2xc 2y", "ba-c", "222", Orthorhombic, 'P', false},
	93: {17, "P222_1", "D2^2", "P 2xa 2y", "cab", "222", Orthorhombic, 'P', false},
	94: {17, "P222_1", "D2^2", "P 2xa 2ya", "-cba", "222", Orthorhombic, 'P', false},
	95: {17, "P222_1", "D2^2", "P 2xb 2yb", "bca", "222", Orthorhombic, 'P', false},
	96: {17, "P222_1", "D2^2", "P 2x 2yb", "a-cb", "222", Orthorhombic, 'P', false},
	97: {18, "P2_12_12", "D2^3", "P 2 2ab", "abc", "222", Orthorhombic, 'P', true},
	98: {18, "P2_12_12", "D2^3", "P 2 2ab", "ba-c", "222", Orthorhombic, 'P', false},
	99: {18, "P2_12_12", "D2^3", "P 2x 2ybc", "cab", "222", Orthorhombic, 'P', false},
	100: {18, "P2_12_12", "D2^3", "P 2xac 2y", "bca", "222", Orthorhombic, 'P', false},
	101: {19, "P2_12_12_1", "D2^4", "P 2ac 2ab", "abc", "222", Orthorhombic, 'P', true},
	102: {19, "P2_12_12_1", "D2^4", "P 2xac 2yab", "ba-c", "222", Orthorhombic, 'P', false},
	103: {20, "C222_1", "D2^5", "C 2c 2", "abc", "222", Orthorhombic, 'C', true},
	104: {20, "C222_1", "D2^5", "C 2xc 2y", "ba-c", "222", Orthorhombic, 'C', false},
	105: {20, "C222_1", "D2^5", "A 2xa 2y", "cab", "222", Orthorhombic, 'A', false},
	106: {20, "C222_1", "D2^5", "A 2xa 2ya", "-cba", "222", Orthorhombic, 'A', false},
	107: {20, "C222_1", "D2^5", "B 2xb 2yb", "bca", "222", Orthorhombic, 'B', false},
	108: {20, "C222_1", "D2^5", "B 2x 2yb", "a-cb", "222", Orthorhombic, 'B', false},
	109: {21, "C222", "D2^6", "C 2 2", "abc", "222", Orthorhombic, 'C', true},
	110: {21, "C222", "D2^6", "A 2x 2y", "cab", "222", Orthorhombic, 'A', false},
	111: {21, "C222", "D2^6", "B 2x 2y", "bca", "222", Orthorhombic, 'B', false},
	112: {22, "F222", "D2^7", "F 2 2", "abc", "222", Orthorhombic, 'F', true},
	113: {23, "I222", "D2^8", "I 2 2", "abc", "222", Orthorhombic, 'I', true},
	114: {24, "I2_12_12_1", "D2^9", "I 2b 2c", "abc", "222", Orthorhombic, 'I', true},
	115: {24, "I2_12_12_1", "D2^9", "I 2xb 2yc", "ba-c", "222", Orthorhombic, 'I', false},
	116: {25, "Pmm2", "C2v^1", "P 2 -2", "abc", "mm2", Orthorhombic, 'P', true},
	117: {25, "Pmm2", "C2v^1", "P -2y -2z", "cab", "mm2", Orthorhombic, 'P', false},
	118: {25, "Pmm2", "C2v^1", "P -2x -2z", "bca", "mm2", Orthorhombic, 'P', false},
	119: {26, "Pmc2_1", "C2v^2", "P 2c -2", "abc", "mm2", Orthorhombic, 'P', true},
	120: {26, "Pmc2_1", "C2v^2", "P -2xc -2y", "ba-c", "mm2", Orthorhombic, 'P', false},
	121: {26, "Pmc2_1", "C2v^2", "P -2y -2za", "cab", "mm2", Orthorhombic, 'P', false},
	122: {26, "Pmc2_1", "C2v^2", "P -2ya -2z", "-cba", "mm2", Orthorhombic, 'P', false},
	123: {26, "Pmc2_1", "C2v^2", "P -2xb -2z", "bca", "mm2", Orthorhombic, 'P', false},
	124: {26, "Pmc2_1", "C2v^2", "P -2x -2zb", "a-cb", "mm2", Orthorhombic, 'P', false},
	125: {27, "Pcc2", "C2v^3", "P 2 -2c", "abc", "mm2", Orthorhombic, 'P', true},
	126: {27, "Pcc2", "C2v^3", "P -2ya -2za", "cab", "mm2", Orthorhombic, 'P', false},
	127: {27, "Pcc2", "C2v^3", "P -2xb -2zb", "bca", "mm2", Orthorhombic, 'P', false},
	128: {28, "Pma2", "C2v^4", "P 2 -2a", "abc", "mm2", Orthorhombic, 'P', true},
	129: {28, "Pma2", "C2v^4", "P -2xb -2yb", "ba-c", "mm2", Orthorhombic, 'P', false},
	130: {28, "Pma2", "C2v^4", "P -2yb -2zb", "cab", "mm2", Orthorhombic, 'P', false},
	131: {28, "Pma2", "C2v^4", "P -2yc -2zc", "-cba", "mm2", Orthorhombic, 'P', false},
	132: {28, "Pma2", "C2v^4", "P -2xc -2zc", "bca", "mm2", Orthorhombic, 'P', false},
	133: {28, "Pma2", "C2v^4", "P -2xa -2za", "a-cb", "mm2", Orthorhombic, 'P', false},
	134: {29, "Pca2_1", "C2v^5", "P 2c -2ac", "abc", "mm2", Orthorhombic, 'P', true},
	135: {29, "Pca2_1", "C2v^5", "P -2xb -2ybc", "ba-c", "mm2", Orthorhombic, 'P', false},
	136: {29, "Pca2_1", "C2v^5", "P -2yab -2zb", "cab", "mm2", Orthorhombic, 'P', false},
	137: {29, "Pca2_1", "C2v^5", "P -2yc -2zac", "-cba", "mm2", Orthorhombic, 'P', false},
	138: {29, "Pca2_1", "C2v^5", "P -2xc -2zbc", "bca", "mm2", Orthorhombic, 'P', false},
	139: {29, "Pca2_1", "C2v^5", "P -2xab -2za", "a-cb", "mm2", Orthorhombic, 'P', false},
	140: {30, "Pnc2", "C2v^6", "P 2 -2bc", "abc", "mm2", Orthorhombic, 'P', true},
	141: {30, "Pnc2", "C2v^6", "P -2xac -2yac", "ba-c", "mm2", Orthorhombic, 'P', false},
	142: {30, "Pnc2", "C2v^6", "P -2yac -2zac", "cab", "mm2", Orthorhombic, 'P', false},
	143: {30, "Pnc2", "C2v^6", "P -2yab -2zab", "-cba", "mm2", Orthorhombic, 'P', false},
	144: {30, "Pnc2", "C2v^6", "P -2xab -2zab", "bca", "mm2", Orthorhombic, 'P', false},
	145: {30, "Pnc2", "C2v^6", "P -2xbc -2zbc", "a-cb", "mm2", Orthorhombic, 'P', false},
	146: {31, "Pmn2_1", "C2v^7", "P 2ac -2", "abc", "mm2", Orthorhombic, 'P', true},
	147: {31, "Pmn2_1", "C2v^7", "P -2xbc -2y", "ba-c", "mm2", Orthorhombic, 'P', false},
	148: {31, "Pmn2_1", "C2v^7", "P -2y -2zab", "cab", "mm2", Orthorhombic, 'P', false},
	149: {31, "Pmn2_1", "C2v^7", "P -2yac -2z", "-cba", "mm2", Orthorhombic, 'P', false},
	150: {31, "Pmn2_1", "C2v^7", "P -2xbc -2z", "bca", "mm2", Orthorhombic, 'P', false},
	151: {31, "Pmn2_1", "C2v^7", "P -2x -2zab", "a-cb", "mm2", Orthorhombic, 'P', false},
	152: {32, "Pba2", "C2v^8", "P 2 -2ab", "abc", "mm2", Orthorhombic, 'P', true},
	153: {32, "Pba2", "C2v^8", "P -2ybc -2zbc", "cab", "mm2", Orthorhombic, 'P', false},
	154: {32, "Pba2", "C2v^8", "P -2xac -2zac", "bca", "mm2", Orthorhombic, 'P', false},
	155: {33, "Pna2_1", "C2v^9", "P 2c -2n", "abc", "mm2", Orthorhombic, 'P', true},
	156: {33, "Pna2_1", "C2v^9", "P -2xab -2yabc", "ba-c", "mm2", Orthorhombic, 'P', false},
	157: {33, "Pna2_1", "C2v^9", "P -2yabc -2zbc", "cab", "mm2", Orthorhombic, 'P', false},
	158: {33, "Pna2_1", "C2v^9", "P -2ybc -2zabc", "-cba", "mm2", Orthorhombic, 'P', false},
	159: {33, "Pna2_1", "C2v^9", "P -2xac -2zabc", "bca", "mm2", Orthorhombic, 'P', false},
	160: {33, "Pna2_1", "C2v^9", "P -2xabc -2zac", "a-cb", "mm2", Orthorhombic, 'P', false},
	161: {34, "Pnn2", "C2v^10", "P 2 -2n", "abc", "mm2", Orthorhombic, 'P', true},
	162: {34, "Pnn2", "C2v^10", "P -2yabc -2zabc", "cab", "mm2", Orthorhombic, 'P', false},
	163: {34, "Pnn2", "C2v^10", "P -2xabc -2zabc", "bca", "mm2", Orthorhombic, 'P', false},
	164: {35, "Cmm2", "C2v^11", "C 2 -2", "abc", "mm2", Orthorhombic, 'C', true},
	165: {35, "Cmm2", "C2v^11", "A -2y -2z", "cab", "mm2", Orthorhombic, 'A', false},
	166: {35, "Cmm2", "C2v^11", "B -2x -2z", "bca", "mm2", Orthorhombic, 'B', false},
	167: {36, "Cmc2_1", "C2v^12", "C 2c -2", "abc", "mm2", Orthorhombic, 'C', true},
	168: {36, "Cmc2_1", "C2v^12", "C -2xc -2y", "ba-c", "mm2", Orthorhombic, 'C', false},
	169: {36, "Cmc2_1", "C2v^12", "A -2y -2za", "cab", "mm2", Orthorhombic, 'A', false},
	170: {36, "Cmc2_1", "C2v^12", "A -2ya -2z", "-cba", "mm2", Orthorhombic, 'A', false},
	171: {36, "Cmc2_1", "C2v^12", "B -2xb -2z", "bca", "mm2", Orthorhombic, 'B', false},
	172: {36, "Cmc2_1", "C2v^12", "B -2x -2zb", "a-cb", "mm2", Orthorhombic, 'B', false},
	173: {37, "Ccc2", "C2v^13", "C 2 -2c", "abc", "mm2", Orthorhombic, 'C', true},
	174: {37, "Ccc2", "C2v^13", "A -2ya -2za", "cab", "mm2", Orthorhombic, 'A', false},
	175: {37, "Ccc2", "C2v^13", "B -2xb -2zb", "bca", "mm2", Orthorhombic, 'B', false},
	176: {38, "Amm2", "C2v^14", "A 2 -2", "abc", "mm2", Orthorhombic, 'A', true},
	177: {38, "Amm2", "C2v^14", "B -2x -2y", "ba-c", "mm2", Orthorhombic, 'B', false},
	178: {38, "Amm2", "C2v^14", "B -2y -2z", "cab", "mm2", Orthorhombic, 'B', false},
	179: {38, "Amm2", "C2v^14", "C -2y -2z", "-cba", "mm2", Orthorhombic, 'C', false},
	180: {38, "Amm2", "C2v^14", "C -2x -2z", "bca", "mm2", Orthorhombic, 'C', false},
	181: {38, "Amm2", "C2v^14", "A -2x -2z", "a-cb", "mm2", Orthorhombic, 'A', false},
	182: {39, "Aem2", "C2v^15", "A 2 -2b", "abc", "mm2", Orthorhombic, 'A', true},
	183: {39, "Aem2", "C2v^15", "B -2xc -2yc", "ba-c", "mm2", Orthorhombic, 'B', false},
	184: {39, "Aem2", "C2v^15", "B -2yc -2zc", "cab", "mm2", Orthorhombic, 'B', false},
	185: {39, "Aem2", "C2v^15", "C -2yb -2zb", "-cba", "mm2", Orthorhombic, 'C', false},
	186: {39, "Aem2", "C2v^15", "C -2xb -2zb", "bca", "mm2", Orthorhombic, 'C', false},
	187: {39, "Aem2", "C2v^15", "A -2xc -2zc", "a-cb", "mm2", Orthorhombic, 'A', false},
	188: {40, "Ama2", "C2v^16", "A 2 -2a", "abc", "mm2", Orthorhombic, 'A', true},
	189: {40, "Ama2", "C2v^16", "B -2xb -2yb", "ba-c", "mm2", Orthorhombic, 'B', false},
	190: {40, "Ama2", "C2v^16", "B -2yb -2zb", "cab", "mm2", Orthorhombic, 'B', false},
	191: {40, "Ama2", "C2v^16", "C -2yc -2zc", "-cba", "mm2", Orthorhombic, 'C', false},
	192: {40, "Ama2", "C2v^16", "C -2xc -2zc", "bca", "mm2", Orthorhombic, 'C', false},
	193: {40, "Ama2", "C2v^16", "A -2xa -2za", "a-cb", "mm2", Orthorhombic, 'A', false},
	194: {41, "Aea2", "C2v^17", "A 2 -2ab", "abc", "mm2", Orthorhombic, 'A', true},
	195: {41, "Aea2", "C2v^17", "B -2xbc -2ybc", "ba-c", "mm2", Orthorhombic, 'B', false},
	196: {41, "Aea2", "C2v^17", "B -2ybc -2zbc", "cab", "mm2", Orthorhombic, 'B', false},
	197: {41, "Aea2", "C2v^17", "C -2ybc -2zbc", "-cba", "mm2", Orthorhombic, 'C', false},
	198: {41, "Aea2", "C2v^17", "C -2xbc -2zbc", "bca", "mm2", Orthorhombic, 'C', false},
	199: {41, "Aea2", "C2v^17", "A -2xac -2zac", "a-cb", "mm2", Orthorhombic, 'A', false},
	200: {42, "Fmm2", "C2v^18", "F 2 -2", "abc", "mm2", Orthorhombic, 'F', true},
	201: {42, "Fmm2", "C2v^18", "F -2y -2z", "cab", "mm2", Orthorhombic, 'F', false},
	202: {42, "Fmm2", "C2v^18", "F -2x -2z", "bca", "mm2", Orthorhombic, 'F', false},
	203: {43, "Fdd2", "C2v^19", "F 2 -2d", "abc", "mm2", Orthorhombic, 'F', true},
	204: {43, "Fdd2", "C2v^19", "F -2xuvcw -2yuvcw", "ba-c", "mm2", Orthorhombic, 'F', false},
	205: {43, "Fdd2", "C2v^19", "F -2yuvw -2zuvw", "cab", "mm2", Orthorhombic, 'F', false},
	206: {43, "Fdd2", "C2v^19", "F -2yuvcw -2zuvcw", "-cba", "mm2", Orthorhombic, 'F', false},
	207: {43, "Fdd2", "C2v^19", "F -2xuvw -2zuvw", "bca", "mm2", Orthorhombic, 'F', false},
	208: {43, "Fdd2", "C2v^19", "F -2xuvcw -2zuvcw", "a-cb", "mm2", Orthorhombic, 'F', false},
	209: {44, "Imm2", "C2v^20", "I 2 -2", "abc", "mm2", Orthorhombic, 'I', true},
	210: {44, "Imm2", "C2v^20", "I -2y -2z", "cab", "mm2", Orthorhombic, 'I', false},
	211: {44, "Imm2", "C2v^20", "I -2x -2z", "bca", "mm2", Orthorhombic, 'I', false},
	212: {45, "Iba2", "C2v^21", "I 2 -2c", "abc", "mm2", Orthorhombic, 'I', true},
	213: {45, "Iba2", "C2v^21", "I -2ybc -2zbc", "cab", "mm2", Orthorhombic, 'I', false},
	214: {45, "Iba2", "C2v^21", "I -2xb -2zb", "bca", "mm2", Orthorhombic, 'I', false},
	215: {46, "Ima2", "C2v^22", "I 2 -2a", "abc", "mm2", Orthorhombic, 'I', true},
	216: {46, "Ima2", "C2v^22", "I -2xb -2yb", "ba-c", "mm2", Orthorhombic, 'I', false},
	217: {46, "Ima2", "C2v^22", "I -2yb -2zb", "cab", "mm2", Orthorhombic, 'I', false},
	218: {46, "Ima2", "C2v^22", "I -2yc -2zc", "-cba", "mm2", Orthorhombic, 'I', false},
	219: {46, "Ima2", "C2v^22", "I -2xc -2zc", "bca", "mm2", Orthorhombic, 'I', false},
	220: {46, "Ima2", "C2v^22", "I -2xbc -2zbc", "a-cb", "mm2", Orthorhombic, 'I', false},
	221: {47, "Pmmm", "D2h^1", "-P 2 2", "abc", "mmm", Orthorhombic, 'P', true},
	222: {48, "Pnnn", "D2h^2", "-P 2ab 2bc", "2abc", "mmm", Orthorhombic, 'P', true},
	223: {48, "Pnnn", "D2h^2", "P -1abc -2xabc -2yabc", "1abc", "mmm", Orthorhombic, 'P', false},
	224: {49, "Pccm", "D2h^3", "-P 2 2c", "abc", "mmm", Orthorhombic, 'P', true},
	225: {49, "Pccm", "D2h^3", "-P -2x -2ya", "cab", "mmm", Orthorhombic, 'P', false},
	226: {49, "Pccm", "D2h^3", "-P -2xb -2y", "bca", "mmm", Orthorhombic, 'P', false},
	227: {50, "Pban", "D2h^4", "-P 2ab 2b", "2abc", "mmm", Orthorhombic, 'P', true},
	228: {50, "Pban", "D2h^4", "P -1ab -2xab -2yab", "1abc", "mmm", Orthorhombic, 'P', false},
	229: {50, "Pban", "D2h^4", "-P -2xbc -2yc", "2cab", "mmm", Orthorhombic, 'P', false},
	230: {50, "Pban", "D2h^4", "P -1ab -2xabc -2ybc", "1cab", "mmm", Orthorhombic, 'P', false},
	231: {50, "Pban", "D2h^4", "-P -2xc -2yac", "2bca", "mmm", Orthorhombic, 'P', false},
	232: {50, "Pban", "D2h^4", "P -1ab -2xac -2yabc", "1bca", "mmm", Orthorhombic, 'P', false},
	233: {51, "Pmma", "D2h^5", "-P 2a 2a", "abc", "mmm", Orthorhombic, 'P', true},
	234: {51, "Pmma", "D2h^5", "-P -2x -2yb", "ba-c", "mmm", Orthorhombic, 'P', false},
	235: {51, "Pmma", "D2h^5", "-P -2xb -2yb", "cab", "mmm", Orthorhombic, 'P', false},
	236: {51, "Pmma", "D2h^5", "-P -2xc -2y", "-cba", "mmm", Orthorhombic, 'P', false},
	237: {51, "Pmma", "D2h^5", "-P -2x -2yc", "bca", "mmm", Orthorhombic, 'P', false},
	238: {51, "Pmma", "D2h^5", "-P -2xa -2ya", "a-cb", "mmm", Orthorhombic, 'P', false},
	239: {52, "Pnna", "D2h^6", "-P 2a 2bc", "abc", "mmm", Orthorhombic, 'P', true},
	240: {52, "Pnna", "D2h^6", "-P -2xabc -2yac", "ba-c", "mmm", Orthorhombic, 'P', false},
	241: {52, "Pnna", "D2h^6", "-P -2xb -2yac", "cab", "mmm", Orthorhombic, 'P', false},
	242: {52, "Pnna", "D2h^6", "-P -2xc -2yabc", "-cba", "mmm", Orthorhombic, 'P', false},
	243: {52, "Pnna", "D2h^6", "-P -2xabc -2yc", "bca", "mmm", Orthorhombic, 'P', false},
	244: {52, "Pnna", "D2h^6", "-P -2xbc -2ya", "a-cb", "mmm", Orthorhombic, 'P', false},
	245: {53, "Pmna", "D2h^7", "-P 2ac 2", "abc", "mmm", Orthorhombic, 'P', true},
	246: {53, "Pmna", "D2h^7", "-P -2xbc -2y", "ba-c", "mmm", Orthorhombic, 'P', false},
	247: {53, "Pmna", "D2h^7", "-P -2xab -2y", "cab", "mmm", Orthorhombic, 'P', false},
	248: {53, "Pmna", "D2h^7", "-P -2xac -2yac", "-cba", "mmm", Orthorhombic, 'P', false},
	249: {53, "Pmna", "D2h^7", "-P -2xbc -2ybc", "bca", "mmm", Orthorhombic, 'P', false},
	250: {53, "Pmna", "D2h^7", "-P -2x -2yab", "a-cb", "mmm", Orthorhombic, 'P', false},
	251: {54, "Pcca", "D2h^8", "-P 2a 2ac", "abc", "mmm", Orthorhombic, 'P', true},
	252: {54, "Pcca", "D2h^8", "-P -2xc -2ybc", "ba-c", "mmm", Orthorhombic, 'P', false},
	253: {54, "Pcca", "D2h^8", "-P -2xb -2yab", "cab", "mmm", Orthorhombic, 'P', false},
	254: {54, "Pcca", "D2h^8", "-P -2xc -2ya", "-cba", "mmm", Orthorhombic, 'P', false},
	255: {54, "Pcca", "D2h^8", "-P -2xb -2yc", "bca", "mmm", Orthorhombic, 'P', false},
	256: {54, "Pcca", "D2h^8", "-P -2xab -2ya", "a-cb", "mmm", Orthorhombic, 'P', false},
	257: {55, "Pbam", "D2h^9", "-P 2 2ab", "abc", "mmm", Orthorhombic, 'P', true},
	258: {55, "Pbam", "D2h^9", "-P -2x -2ybc", "cab", "mmm", Orthorhombic, 'P', false},
	259: {55, "Pbam", "D2h^9", "-P -2xac -2y", "bca", "mmm", Orthorhombic, 'P', false},
	260: {56, "Pccn", "D2h^10", "-P 2ab 2ac", "abc", "mmm", Orthorhombic, 'P', true},
	261: {56, "Pccn", "D2h^10", "-P -2xbc -2yab", "cab", "mmm", Orthorhombic, 'P', false},
	262: {56, "Pccn", "D2h^10", "-P -2xab -2yac", "bca", "mmm", Orthorhombic, 'P', false},
	263: {57, "Pbcm", "D2h^11", "-P 2c 2b", "abc", "mmm", Orthorhombic, 'P', true},
	264: {57, "Pbcm", "D2h^11", "-P -2xac -2ya", "ba-c", "mmm", Orthorhombic, 'P', false},
	265: {57, "Pbcm", "D2h^11", "-P -2xa -2yc", "cab", "mmm", Orthorhombic, 'P', false},
	266: {57, "Pbcm", "D2h^11", "-P -2xa -2yab", "-cba", "mmm", Orthorhombic, 'P', false},
	267: {57, "Pbcm", "D2h^11", "-P -2xab -2yb", "bca", "mmm", Orthorhombic, 'P', false},
	268: {57, "Pbcm", "D2h^11", "-P -2xc -2yb", "a-cb", "mmm", Orthorhombic, 'P', false},
	269: {58, "Pnnm", "D2h^12", "-P 2 2n", "abc", "mmm", Orthorhombic, 'P', true},
	270: {58, "Pnnm", "D2h^12", "-P -2x -2yabc", "cab", "mmm", Orthorhombic, 'P', false},
	271: {58, "Pnnm", "D2h^12", "-P -2xabc -2y", "bca", "mmm", Orthorhombic, 'P', false},
	272: {59, "Pmmn", "D2h^13", "-P 2ab 2a", "2abc", "mmm", Orthorhombic, 'P', true},
	273: {59, "Pmmn", "D2h^13", "P -1ab -2x -2y", "1abc", "mmm", Orthorhombic, 'P', false},
	274: {59, "Pmmn", "D2h^13", "-P -2xbc -2yb", "2cab", "mmm", Orthorhombic, 'P', false},
	275: {59, "Pmmn", "D2h^13", "P -1ab -2xabc -2y", "1cab", "mmm", Orthorhombic, 'P', false},
	276: {59, "Pmmn", "D2h^13", "-P -2xa -2yac", "2bca", "mmm", Orthorhombic, 'P', false},
	277: {59, "Pmmn", "D2h^13", "P -1ab -2x -2yabc", "1bca", "mmm", Orthorhombic, 'P', false},
	278: {60, "Pbcn", "D2h^14", "-P 2n 2ab", "abc", "mmm", Orthorhombic, 'P', true},
	279: {60, "Pbcn", "D2h^14", "-P -2xc -2yab", "ba-c", "mmm", Orthorhombic, 'P', false},
	280: {60, "Pbcn", "D2h^14", "-P -2xabc -2ybc", "cab", "mmm", Orthorhombic, 'P', false},
	281: {60, "Pbcn", "D2h^14", "-P -2xabc -2ya", "-cba", "mmm", Orthorhombic, 'P', false},
	282: {60, "Pbcn", "D2h^14", "-P -2xb -2yabc", "bca", "mmm", Orthorhombic, 'P', false},
	283: {60, "Pbcn", "D2h^14", "-P -2xac -2yabc", "a-cb", "mmm", Orthorhombic, 'P', false},
	284: {61, "Pbca", "D2h^15", "-P 2ac 2ab", "abc", "mmm", Orthorhombic, 'P', true},
	285: {61, "Pbca", "D2h^15", "-P -2xac -2yab", "ba-c", "mmm", Orthorhombic, 'P', false},
	286: {62, "Pnma", "D2h^16", "-P 2ac 2n", "abc", "mmm", Orthorhombic, 'P', true},
	287: {62, "Pnma", "D2h^16", "-P -2xa -2yabc", "ba-c", "mmm", Orthorhombic, 'P', false},
	288: {62, "Pnma", "D2h^16", "-P -2xab -2yabc", "cab", "mmm", Orthorhombic, 'P', false},
	289: {62, "Pnma", "D2h^16", "-P -2xac -2yb", "-cba", "mmm", Orthorhombic, 'P', false},
	290: {62, "Pnma", "D2h^16", "-P -2xa -2ybc", "bca", "mmm", Orthorhombic, 'P', false},
	291: {62, "Pnma", "D2h^16", "-P -2xabc -2yab", "a-cb", "mmm", Orthorhombic, 'P', false},
	292: {63, "Cmcm", "D2h^17", "-C 2c 2", "abc", "mmm", Orthorhombic, 'C', true},
	293: {63, "Cmcm", "D2h^17", "-C -2xc -2y", "ba-c", "mmm", Orthorhombic, 'C', false},
	294: {63, "Cmcm", "D2h^17", "-A -2xa -2y", "cab", "mmm", Orthorhombic, 'A', false},
	295: {63, "Cmcm", "D2h^17", "-A -2xa -2ya", "-cba", "mmm", Orthorhombic, 'A', false},
	296: {63, "Cmcm", "D2h^17", "-B -2xb -2yb", "bca", "mmm", Orthorhombic, 'B', false},
	297: {63, "Cmcm", "D2h^17", "-B -2x -2yb", "a-cb", "mmm", Orthorhombic, 'B', false},
	298: {64, "Cmce", "D2h^18", "-C 2ac 2", "abc", "mmm", Orthorhombic, 'C', true},
	299: {64, "Cmce", "D2h^18", "-C -2xbc -2y", "ba-c", "mmm", Orthorhombic, 'C', false},
	300: {64, "Cmce", "D2h^18", "-A -2xac -2y", "cab", "mmm", Orthorhombic, 'A', false},
	301: {64, "Cmce", "D2h^18", "-A -2xac -2yac", "-cba", "mmm", Orthorhombic, 'A', false},
	302: {64, "Cmce", "D2h^18", "-B -2xbc -2ybc", "bca", "mmm", Orthorhombic, 'B', false},
	303: {64, "Cmce", "D2h^18", "-B -2x -2ybc", "a-cb", "mmm", Orthorhombic, 'B', false},
	304: {65, "Cmmm", "D2h^19", "-C 2 2", "abc", "mmm", Orthorhombic, 'C', true},
	305: {65, "Cmmm", "D2h^19", "-A -2x -2y", "cab", "mmm", Orthorhombic, 'A', false},
	306: {65, "Cmmm", "D2h^19", "-B -2x -2y", "bca", "mmm", Orthorhombic, 'B', false},
	307: {66, "Cccm", "D2h^20", "-C 2 2c", "abc", "mmm", Orthorhombic, 'C', true},
	308: {66, "Cccm", "D2h^20", "-A -2x -2ya", "cab", "mmm", Orthorhombic, 'A', false},
	309: {66, "Cccm", "D2h^20", "-B -2xb -2y", "bca", "mmm", Orthorhombic, 'B', false},
	310: {67, "Cmme", "D2h^21", "-C 2a 2", "abc", "mmm", Orthorhombic, 'C', true},
	311: {67, "Cmme", "D2h^21", "-C -2xb -2y", "ba-c", "mmm", Orthorhombic, 'C', false},
	312: {67, "Cmme", "D2h^21", "-A -2xc -2y", "cab", "mmm", Orthorhombic, 'A', false},
	313: {67, "Cmme", "D2h^21", "-A -2xc -2yc", "-cba", "mmm", Orthorhombic, 'A', false},
	314: {67, "Cmme", "D2h^21", "-B -2xc -2yc", "bca", "mmm", Orthorhombic, 'B', false},
	315: {67, "Cmme", "D2h^21", "-B -2x -2yc", "a-cb", "mmm", Orthorhombic, 'B', false},
	316: {68, "Ccce", "D2h^22", "-C 2a 2ac", "2abc", "mmm", Orthorhombic, 'C', true},
	317: {68, "Ccce", "D2h^22", "C -1bc -2xbc -2ybc", "1abc", "mmm", Orthorhombic, 'C', false},
	318: {68, "Ccce", "D2h^22", "-C -2xc -2ybc", "2ba-c", "mmm", Orthorhombic, 'C', false},
	319: {68, "Ccce", "D2h^22", "C -1bc -2xc -2yc", "1ba-c", "mmm", Orthorhombic, 'C', false},
	320: {68, "Ccce", "D2h^22", "-A -2xc -2yac", "2cab", "mmm", Orthorhombic, 'A', false},
	321: {68, "Ccce", "D2h^22", "-A -2xc -2ya", "1cab", "mmm", Orthorhombic, 'A', false},
	322: {68, "Ccce", "D2h^22", "-A -2xc -2ya", "2-cba", "mmm", Orthorhombic, 'A', false},
	323: {68, "Ccce", "D2h^22", "-A -2xc -2yac", "1-cba", "mmm", Orthorhombic, 'A', false},
	324: {68, "Ccce", "D2h^22", "-B -2xb -2yc", "2bca", "mmm", Orthorhombic, 'B', false},
	325: {68, "Ccce", "D2h^22", "B -1bc -2xb -2ybc", "1bca", "mmm", Orthorhombic, 'B', false},
	326: {68, "Ccce", "D2h^22", "-B -2xbc -2yc", "2a-cb", "mmm", Orthorhombic, 'B', false},
	327: {68, "Ccce", "D2h^22", "B -1bc -2xbc -2ybc", "1a-cb", "mmm", Orthorhombic, 'B', false},
	328: {69, "Fmmm", "D2h^23", "-F 2 2", "abc", "mmm", Orthorhombic, 'F', true},
	329: {70, "Fddd", "D2h^24", "-F 2uv 2vw", "2abc", "mmm", Orthorhombic, 'F', true},
	330: {70, "Fddd", "D2h^24", "F -1uvcw -2xuvcw -2yuvcw", "1abc", "mmm", Orthorhombic, 'F', false},
	331: {70, "Fddd", "D2h^24", "-F -2xvcw -2yucw", "2ba-c", "mmm", Orthorhombic, 'F', false},
	332: {70, "Fddd", "D2h^24", "F -1uvcw -2xuvw -2yuvw", "1ba-c", "mmm", Orthorhombic, 'F', false},
	333: {70, "Fddd", "D2h^24", "-F -2xvw -2yucw", "2-cba", "mmm", Orthorhombic, 'F', false},
	334: {70, "Fddd", "D2h^24", "F -1uvcw -2xuvcw -2yuvw", "1-cba", "mmm", Orthorhombic, 'F', false},
	335: {70, "Fddd", "D2h^24", "-F -2xvcw -2yuw", "2a-cb", "mmm", Orthorhombic, 'F', false},
	336: {70, "Fddd", "D2h^24", "F -1uvcw -2xuvw -2yuvcw", "1a-cb", "mmm", Orthorhombic, 'F', false},
	337: {71, "Immm", "D2h^25", "-I 2 2", "abc", "mmm", Orthorhombic, 'I', true},
	338: {72, "Ibam", "D2h^26", "-I 2 2c", "abc", "mmm", Orthorhombic, 'I', true},
	339: {72, "Ibam", "D2h^26", "-I -2x -2ybc", "cab", "mmm", Orthorhombic, 'I', false},
	340: {72, "Ibam", "D2h^26", "-I -2xb -2y", "bca", "mmm", Orthorhombic, 'I', false},
	341: {73, "Ibca", "D2h^27", "-I 2b 2c", "abc", "mmm", Orthorhombic, 'I', true},
	342: {73, "Ibca", "D2h^27", "-I -2xb -2yc", "ba-c", "mmm", Orthorhombic, 'I', false},
	343: {74, "Imma", "D2h^28", "-I 2b 2", "abc", "mmm", Orthorhombic, 'I', true},
	344: {74, "Imma", "D2h^28", "-I -2xbc -2y", "ba-c", "mmm", Orthorhombic, 'I', false},
	345: {74, "Imma", "D2h^28", "-I -2xc -2y", "cab", "mmm", Orthorhombic, 'I', false},
	346: {74, "Imma", "D2h^28", "-I -2xb -2yb", "-cba", "mmm", Orthorhombic, 'I', false},
	347: {74, "Imma", "D2h^28", "-I -2xbc -2ybc", "bca", "mmm", Orthorhombic, 'I', false},
	348: {74, "Imma", "D2h^28", "-I -2x -2yc", "a-cb", "mmm", Orthorhombic, 'I', false},
	349: {75, "P4", "C4^1", "P 4", "", "4", Tetragonal, 'P', true},
	350: {76, "P4_1", "C4^2", "P 4w", "", "4", Tetragonal, 'P', true},
	351: {77, "P4_2", "C4^3", "P 4c", "", "4", Tetragonal, 'P', true},
	352: {78, "P4_3", "C4^4", "P 4cw", "", "4", Tetragonal, 'P', true},
	353: {79, "I4", "C4^5", "I 4", "", "4", Tetragonal, 'I', true},
	354: {80, "I4_1", "C4^6", "I 4bw", "", "4", Tetragonal, 'I', true},
	355: {81, "P-4", "S4^1", "P -4", "", "-4", Tetragonal, 'P', true},
	356: {82, "I-4", "S4^2", "I -4", "", "-4", Tetragonal, 'I', true},
	357: {83, "P4/m", "C4h^1", "-P 4", "", "4/m", Tetragonal, 'P', true},
	358: {84, "P4_2/m", "C4h^2", "-P 4c", "", "4/m", Tetragonal, 'P', true},
	359: {85, "P4/n", "C4h^3", "-P 4a", "2", "4/m", Tetragonal, 'P', true},
	360: {85, "P4/n", "C4h^3", "P -1ab -4z", "1", "4/m", Tetragonal, 'P', false},
	361: {86, "P4_2/n", "C4h^4", "-P 4bc", "2", "4/m", Tetragonal, 'P', true},
	362: {86, "P4_2/n", "C4h^4", "P -1abc -4z", "1", "4/m", Tetragonal, 'P', false},
	363: {87, "I4/m", "C4h^5", "-I 4", "", "4/m", Tetragonal, 'I', true},
	364: {88, "I4_1/a", "C4h^6", "-I 4ad", "2", "4/m", Tetragonal, 'I', true},
	365: {88, "I4_1/a", "C4h^6", "I -1bcw -4z", "1", "4/m", Tetragonal, 'I', false},
	366: {89, "P422", "D4^1", "P 4 2", "", "422", Tetragonal, 'P', true},
	367: {90, "P42_12", "D4^2", "P 4ab 2ab", "", "422", Tetragonal, 'P', true},
	368: {91, "P4_122", "D4^3", "P 4w 2c", "", "422", Tetragonal, 'P', true},
	369: {92, "P4_12_12", "D4^4", "P 4abw 2nw", "", "422", Tetragonal, 'P', true},
	370: {93, "P4_222", "D4^5", "P 4c 2", "", "422", Tetragonal, 'P', true},
	371: {94, "P4_22_12", "D4^6", "P 4n 2n", "", "422", Tetragonal, 'P', true},
	372: {95, "P4_322", "D4^7", "P 4cw 2c", "", "422", Tetragonal, 'P', true},
	373: {96, "P4_32_12", "D4^8", "P 4nw 2abw", "", "422", Tetragonal, 'P', true},
	374: {97, "I422", "D4^9", "I 4 2", "", "422", Tetragonal, 'I', true},
	375: {98, "I4_122", "D4^10", "I 4bw 2bw", "", "422", Tetragonal, 'I', true},
	376: {99, "P4mm", "C4v^1", "P 4 -2", "", "4mm", Tetragonal, 'P', true},
	377: {100, "P4bm", "C4v^2", "P 4 -2ab", "", "4mm", Tetragonal, 'P', true},
	378: {101, "P4_2cm", "C4v^3", "P 4c -2c", "", "4mm", Tetragonal, 'P', true},
	379: {102, "P4_2nm", "C4v^4", "P 4n -2n", "", "4mm", Tetragonal, 'P', true},
	380: {103, "P4cc", "C4v^5", "P 4 -2c", "", "4mm", Tetragonal, 'P', true},
	381: {104, "P4nc", "C4v^6", "P 4 -2n", "", "4mm", Tetragonal, 'P', true},
	382: {105, "P4_2mc", "C4v^7", "P 4c -2", "", "4mm", Tetragonal, 'P', true},
	383: {106, "P4_2bc", "C4v^8", "P 4c -2ab", "", "4mm", Tetragonal, 'P', true},
	384: {107, "I4mm", "C4v^9", "I 4 -2", "", "4mm", Tetragonal, 'I', true},
	385: {108, "I4cm", "C4v^10", "I 4 -2c", "", "4mm", Tetragonal, 'I', true},
	386: {109, "I4_1md", "C4v^11", "I 4bw -2", "", "4mm", Tetragonal, 'I', true},
	387: {110, "I4_1cd", "C4v^12", "I 4bw -2c", "", "4mm", Tetragonal, 'I', true},
	388: {111, "P-42m", "D2d^1", "P -4 2", "", "-42m", Tetragonal, 'P', true},
	389: {112, "P-42c", "D2d^2", "P -4 2c", "", "-42m", Tetragonal, 'P', true},
	390: {113, "P-42_1m", "D2d^3", "P -4 2ab", "", "-42m", Tetragonal, 'P', true},
	391: {114, "P-42_1c", "D2d^4", "P -4 2n", "", "-42m", Tetragonal, 'P', true},
	392: {115, "P-4m2", "D2d^5", "P -4 -2", "", "-42m", Tetragonal, 'P', true},
	393: {116, "P-4c2", "D2d^6", "P -4 -2c", "", "-42m", Tetragonal, 'P', true},
	394: {117, "P-4b2", "D2d^7", "P -4 -2ab", "", "-42m", Tetragonal, 'P', true},
	395: {118, "P-4n2", "D2d^8", "P -4 -2n", "", "-42m", Tetragonal, 'P', true},
	396: {119, "I-4m2", "D2d^9", "I -4 -2", "", "-42m", Tetragonal, 'I', true},
	397: {120, "I-4c2", "D2d^10", "I -4 -2c", "", "-42m", Tetragonal, 'I', true},
	398: {121, "I-42m", "D2d^11", "I -4 2", "", "-42m", Tetragonal, 'I', true},
	399: {122, "I-42d", "D2d^12", "I -4 2bw", "", "-42m", Tetragonal, 'I', true},
	400: {123, "P4/mmm", "D4h^1", "-P 4 2", "", "4/mmm", Tetragonal, 'P', true},
	401: {124, "P4/mcc", "D4h^2", "-P 4 2c", "", "4/mmm", Tetragonal, 'P', true},
	402: {125, "P4/nbm", "D4h^3", "-P 4a 2b", "2", "4/mmm", Tetragonal, 'P', true},
	403: {125, "P4/nbm", "D4h^3", "P -1ab -4zab -2\"ab", "1", "4/mmm", Tetragonal, 'P', false},
	404: {126, "P4/nnc", "D4h^4", "-P 4a 2bc", "2", "4/mmm", Tetragonal, 'P', true},
	405: {126, "P4/nnc", "D4h^4", "P -1abc -4zabc -2\"abc", "1", "4/mmm", Tetragonal, 'P', false},
	406: {127, "P4/mbm", "D4h^5", "-P 4 2ab", "", "4/mmm", Tetragonal, 'P', true},
	407: {128, "P4/mnc", "D4h^6", "-P 4 2n", "", "4/mmm", Tetragonal, 'P', true},
	408: {129, "P4/nmm", "D4h^7", "-P 4a 2a", "2", "4/mmm", Tetragonal, 'P', true},
	409: {129, "P4/nmm", "D4h^7", "P -1ab -4z -2\"ab", "1", "4/mmm", Tetragonal, 'P', false},
	410: {130, "P4/ncc", "D4h^8", "-P 4a 2ac", "2", "4/mmm", Tetragonal, 'P', true},
	411: {130, "P4/ncc", "D4h^8", "P -1ab -4z -2\"abc", "1", "4/mmm", Tetragonal, 'P', false},
	412: {131, "P4_2/mmc", "D4h^9", "-P 4c 2", "", "4/mmm", Tetragonal, 'P', true},
	413: {132, "P4_2/mcm", "D4h^10", "-P 4c 2c", "", "4/mmm", Tetragonal, 'P', true},
	414: {133, "P4_2/nbc", "D4h^11", "-P 4ac 2b", "2", "4/mmm", Tetragonal, 'P', true},
	415: {133, "P4_2/nbc", "D4h^11", "P -1abc -4z -2\"c", "1", "4/mmm", Tetragonal, 'P', false},
	416: {134, "P4_2/nnm", "D4h^12", "-P 4ac 2bc", "2", "4/mmm", Tetragonal, 'P', true},
	417: {134, "P4_2/nnm", "D4h^12", "P -1abc -4z -2\"", "1", "4/mmm", Tetragonal, 'P', false},
	418: {135, "P4_2/mbc", "D4h^13", "-P 4c 2ab", "", "4/mmm", Tetragonal, 'P', true},
	419: {136, "P4_2/mnm", "D4h^14", "-P 4n 2n", "", "4/mmm", Tetragonal, 'P', true},
	420: {137, "P4_2/nmc", "D4h^15", "-P 4ac 2a", "2", "4/mmm", Tetragonal, 'P', true},
	421: {137, "P4_2/nmc", "D4h^15", "P -1abc -4z -2\"abc", "1", "4/mmm", Tetragonal, 'P', false},
	422: {138, "P4_2/ncm", "D4h^16", "-P 4ac 2ac", "2", "4/mmm", Tetragonal, 'P', true},
	423: {138, "P4_2/ncm", "D4h^16", "P -1abc -4z -2\"ab", "1", "4/mmm", Tetragonal, 'P', false},
	424: {139, "I4/mmm", "D4h^17", "-I 4 2", "", "4/mmm", Tetragonal, 'I', true},
	425: {140, "I4/mcm", "D4h^18", "-I 4 2c", "", "4/mmm", Tetragonal, 'I', true},
	426: {141, "I4_1/amd", "D4h^19", "-I 4bd 2", "2", "4/mmm", Tetragonal, 'I', true},
	427: {141, "I4_1/amd", "D4h^19", "I -1bcw -4z -2\"bcw", "1", "4/mmm", Tetragonal, 'I', false},
	428: {142, "I4_1/acd", "D4h^20", "-I 4bd 2c", "2", "4/mmm", Tetragonal, 'I', true},
	429: {142, "I4_1/acd", "D4h^20", "I -1bcw -4z -2\"bw", "1", "4/mmm", Tetragonal, 'I', false},
	430: {143, "P3", "C3^1", "P 3", "", "3", Trigonal, 'P', true},
	431: {144, "P3_1", "C3^2", "P 31", "", "3", Trigonal, 'P', true},
	432: {145, "P3_2", "C3^3", "P 32", "", "3", Trigonal, 'P', true},
	433: {146, "R3", "C3^4", "R 3", "H", "3", Trigonal, 'R', true},
	434: {146, "R3", "C3^4", "P 3*", "R", "3", Trigonal, 'P', false},
	435: {147, "P-3", "C3i^1", "-P 3", "", "-3", Trigonal, 'P', true},
	436: {148, "R-3", "C3i^2", "-R 3", "H", "-3", Trigonal, 'R', true},
	437: {148, "R-3", "C3i^2", "-P -3*", "R", "-3", Trigonal, 'P', false},
	438: {149, "P312", "D3^1", "P 3 2", "", "32", Trigonal, 'P', true},
	439: {150, "P321", "D3^2", "P 3 2\"", "", "32", Trigonal, 'P', true},
	440: {151, "P3_112", "D3^3", "P 31 2c (0 0 1)", "", "32", Trigonal, 'P', true},
	441: {152, "P3_121", "D3^4", "P 31 2\"", "", "32", Trigonal, 'P', true},
	442: {153, "P3_212", "D3^5", "P 32 2c (0 0 -1)", "", "32", Trigonal, 'P', true},
	443: {154, "P3_221", "D3^6", "P 32 2\"", "", "32", Trigonal, 'P', true},
	444: {155, "R32", "D3^7", "R 3 2\"", "H", "32", Trigonal, 'R', true},
	445: {155, "R32", "D3^7", "P 3* 2'", "R", "32", Trigonal, 'P', false},
	446: {156, "P3m1", "C3v^1", "P 3 -2\"", "", "3m", Trigonal, 'P', true},
	447: {157, "P31m", "C3v^2", "P 3 -2", "", "3m", Trigonal, 'P', true},
	448: {158, "P3c1", "C3v^3", "P 3 -2\"c", "", "3m", Trigonal, 'P', true},
	449: {159, "P31c", "C3v^4", "P 3 -2c", "", "3m", Trigonal, 'P', true},
	450: {160, "R3m", "C3v^5", "R 3 -2\"", "H", "3m", Trigonal, 'R', true},
	451: {160, "R3m", "C3v^5", "P 3* -2'", "R", "3m", Trigonal, 'P', false},
	452: {161, "R3c", "C3v^6", "R 3 -2\"c", "H", "3m", Trigonal, 'R', true},
	453: {161, "R3c", "C3v^6", "P 3* -2'abc", "R", "3m", Trigonal, 'P', false},
	454: {162, "P-31m", "D3d^1", "-P 3 2", "", "-3m", Trigonal, 'P', true},
	455: {163, "P-31c", "D3d^2", "-P 3 2c", "", "-3m", Trigonal, 'P', true},
	456: {164, "P-3m1", "D3d^3", "-P 3 2\"", "", "-3m", Trigonal, 'P', true},
	457: {165, "P-3c1", "D3d^4", "-P 3 2\"c", "", "-3m", Trigonal, 'P', true},
	458: {166, "R-3m", "D3d^5", "-R 3 2\"", "H", "-3m", Trigonal, 'R', true},
	459: {166, "R-3m", "D3d^5", "-P -3* -2'", "R", "-3m", Trigonal, 'P', false},
	460: {167, "R-3c", "D3d^6", "-R 3 2\"c", "H", "-3m", Trigonal, 'R', true},
	461: {167, "R-3c", "D3d^6", "-P -3* -2'abc", "R", "-3m", Trigonal, 'P', false},
	462: {168, "P6", "C6^1", "P 6", "", "6", Hexagonal, 'P', true},
	463: {169, "P6_1", "C6^2", "P 61", "", "6", Hexagonal, 'P', true},
	464: {170, "P6_5", "C6^3", "P 65", "", "6", Hexagonal, 'P', true},
	465: {171, "P6_2", "C6^4", "P 62", "", "6", Hexagonal, 'P', true},
	466: {172, "P6_4", "C6^5", "P 64", "", "6", Hexagonal, 'P', true},
	467: {173, "P6_3", "C6^6", "P 6c", "", "6", Hexagonal, 'P', true},
	468: {174, "P-6", "C3h^1", "P -6", "", "-6", Hexagonal, 'P', true},
	469: {175, "P6/m", "C6h^1", "-P 6", "", "6/m", Hexagonal, 'P', true},
	470: {176, "P6_3/m", "C6h^2", "-P 6c", "", "6/m", Hexagonal, 'P', true},
	471: {177, "P622", "D6^1", "P 6 2", "", "622", Hexagonal, 'P', true},
	472: {178, "P6_122", "D6^2", "P 61 2 (0 0 -1)", "", "622", Hexagonal, 'P', true},
	473: {179, "P6_522", "D6^3", "P 65 2 (0 0 1)", "", "622", Hexagonal, 'P', true},
	474: {180, "P6_222", "D6^4", "P 62 2 (0 0 4)", "", "622", Hexagonal, 'P', true},
	475: {181, "P6_422", "D6^5", "P 64 2 (0 0 -4)", "", "622", Hexagonal, 'P', true},
	476: {182, "P6_322", "D6^6", "P 6c 2c", "", "622", Hexagonal, 'P', true},
	477: {183, "P6mm", "C6v^1", "P 6 -2", "", "6mm", Hexagonal, 'P', true},
	478: {184, "P6cc", "C6v^2", "P 6 -2c", "", "6mm", Hexagonal, 'P', true},
	479: {185, "P6_3cm", "C6v^3", "P 6c -2", "", "6mm", Hexagonal, 'P', true},
	480: {186, "P6_3mc", "C6v^4", "P 6c -2c", "", "6mm", Hexagonal, 'P', true},
	481: {187, "P-6m2", "D3h^1", "P -6 2", "", "-6m2", Hexagonal, 'P', true},
	482: {188, "P-6c2", "D3h^2", "P -6c 2", "", "-6m2", Hexagonal, 'P', true},
	483: {189, "P-62m", "D3h^3", "P -6 -2", "", "-6m2", Hexagonal, 'P', true},
	484: {190, "P-62c", "D3h^4", "P -6c -2c", "", "-6m2", Hexagonal, 'P', true},
	485: {191, "P6/mmm", "D6h^1", "-P 6 2", "", "6/mmm", Hexagonal, 'P', true},
	486: {192, "P6/mcc", "D6h^2", "-P 6 2c", "", "6/mmm", Hexagonal, 'P', true},
	487: {193, "P6_3/mcm", "D6h^3", "-P 6c 2", "", "6/mmm", Hexagonal, 'P', true},
	488: {194, "P6_3/mmc", "D6h^4", "-P 6c 2c", "", "6/mmm", Hexagonal, 'P', true},
	489: {195, "P23", "T^1", "P 2 2 3", "", "23", Cubic, 'P', true},
	490: {196, "F23", "T^2", "F 2 2 3", "", "23", Cubic, 'F', true},
	491: {197, "I23", "T^3", "I 2 2 3", "", "23", Cubic, 'I', true},
	492: {198, "P2_13", "T^4", "P 2ac 2ab 3", "", "23", Cubic, 'P', true},
	493: {199, "I2_13", "T^5", "I 2b 2c 3", "", "23", Cubic, 'I', true},
	494: {200, "Pm-3", "Th^1", "-P 2 2 3", "", "m-3", Cubic, 'P', true},
	495: {201, "Pn-3", "Th^2", "-P 2ab 2bc 3", "2", "m-3", Cubic, 'P', true},
	496: {201, "Pn-3", "Th^2", "P -1abc -3*abc -2xabc", "1", "m-3", Cubic, 'P', false},
	497: {202, "Fm-3", "Th^3", "-F 2 2 3", "", "m-3", Cubic, 'F', true},
	498: {203, "Fd-3", "Th^4", "-F 2uv 2vw 3", "2", "m-3", Cubic, 'F', true},
	499: {203, "Fd-3", "Th^4", "F -1uvcw -3*uvcw -2xuvcw", "1", "m-3", Cubic, 'F', false},
	500: {204, "Im-3", "Th^5", "-I 2 2 3", "", "m-3", Cubic, 'I', true},
	501: {205, "Pa-3", "Th^6", "-P 2ac 2ab 3", "", "m-3", Cubic, 'P', true},
	502: {206, "Ia-3", "Th^7", "-I 2b 2c 3", "", "m-3", Cubic, 'I', true},
	503: {207, "P432", "O^1", "P 4 2 3", "", "432", Cubic, 'P', true},
	504: {208, "P4_232", "O^2", "P 4n 2 3", "", "432", Cubic, 'P', true},
	505: {209, "F432", "O^3", "F 4 2 3", "", "432", Cubic, 'F', true},
	506: {210, "F4_132", "O^4", "F 4d 2 3", "", "432", Cubic, 'F', true},
	507: {211, "I432", "O^5", "I 4 2 3", "", "432", Cubic, 'I', true},
	508: {212, "P4_332", "O^6", "P 4acd 2ab 3", "", "432", Cubic, 'P', true},
	509: {213, "P4_132", "O^7", "P 4bd 2ab 3", "", "432", Cubic, 'P', true},
	510: {214, "I4_132", "O^8", "I 4bd 2c 3", "", "432", Cubic, 'I', true},
	511: {215, "P-43m", "Td^1", "P -4 2 3", "", "-43m", Cubic, 'P', true},
	512: {216, "F-43m", "Td^2", "F -4 2 3", "", "-43m", Cubic, 'F', true},
	513: {217, "I-43m", "Td^3", "I -4 2 3", "", "-43m", Cubic, 'I', true},
	514: {218, "P-43n", "Td^4", "P -4n 2 3", "", "-43m", Cubic, 'P', true},
	515: {219, "F-43c", "Td^5", "F -4c 2 3", "", "-43m", Cubic, 'F', true},
	516: {220, "I-43d", "Td^6", "I -4bd 2c 3", "", "-43m", Cubic, 'I', true},
	517: {221, "Pm-3m", "Oh^1", "-P 4 2 3", "", "m-3m", Cubic, 'P', true},
	518: {222, "Pn-3n", "Oh^2", "-P 4a 2bc 3", "2", "m-3m", Cubic, 'P', true},
	519: {222, "Pn-3n", "Oh^2", "P -1abc -4xabc -4yabc", "1", "m-3m", Cubic, 'P', false},
	520: {223, "Pm-3n", "Oh^3", "-P 4n 2 3", "", "m-3m", Cubic, 'P', true},
	521: {224, "Pn-3m", "Oh^4", "-P 4bc 2bc 3", "2", "m-3m", Cubic, 'P', true},
	522: {224, "Pn-3m", "Oh^4", "P -1abc -4x -4y", "1", "m-3m", Cubic, 'P', false},
	523: {225, "Fm-3m", "Oh^5", "-F 4 2 3", "", "m-3m", Cubic, 'F', true},
	524: {226, "Fm-3c", "Oh^6", "-F 4c 2 3", "", "m-3m", Cubic, 'F', true},
	525: {227, "Fd-3m", "Oh^7", "-F 4vw 2vw 3", "2", "m-3m", Cubic, 'F', true},
	526: {227, "Fd-3m", "Oh^7", "F -1uvcw -4x -4y", "1", "m-3m", Cubic, 'F', false},
	527: {228, "Fd-3c", "Oh^8", "-F 4ud 2vw 3", "2", "m-3m", Cubic, 'F', true},
	528: {228, "Fd-3c", "Oh^8", "F -1uvw -4xc -4yc", "1", "m-3m", Cubic, 'F', false},
	529: {229, "Im-3m", "Oh^9", "-I 4 2 3", "", "m-3m", Cubic, 'I', true},
	530: {230, "Ia-3d", "Oh^10", "-I 4bd 2c 3", "", "m-3m", Cubic, 'I', true},
}
