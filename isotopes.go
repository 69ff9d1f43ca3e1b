package summarize

// isotopes maps the isotope masses printed alongside the geometry to
// atomic numbers
var isotopes = map[string]int{
	"1.0078250":  1,
	"2.0141018":  1,
	"3.0160493":  1,
	"4.0026032":  2,
	"6.0151223":  3,
	"7.0160040":  3,
	"9.0121822":  4,
	"10.0129370": 5,
	"11.0093055": 5,
	"12.0000000": 6,
	"13.0033548": 6,
	"14.0030740": 7,
	"15.0001089": 7,
	"15.9949146": 8,
	"16.9991315": 8,
	"17.9991604": 8,
	"18.9984032": 9,
	"19.9924356": 10,
	"22.9897697": 11,
	"23.9850419": 12,
	"26.9815384": 13,
	"27.9769265": 14,
	"30.9737615": 15,
	"31.9720707": 16,
	"33.9678668": 16,
	"34.9688527": 17,
	"36.9659026": 17,
	"39.9623831": 18,
}
