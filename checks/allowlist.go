package checks

import "github.com/teranos/precheck/gds"

// validLayers holds every (layer, datatype) and (layer, texttype) pair the
// shuttle accepts. Anything else is rejected by the layer check.
var validLayers = gds.NewTagSet([]gds.Tag{
	{Layer: 10, Type: 0},
	{Layer: 11, Type: 0}, {Layer: 11, Type: 20}, {Layer: 11, Type: 44},
	{Layer: 17, Type: 0},
	{Layer: 18, Type: 20},
	{Layer: 20, Type: 0},
	{Layer: 21, Type: 0},
	{Layer: 22, Type: 0}, {Layer: 22, Type: 20}, {Layer: 22, Type: 21}, {Layer: 22, Type: 22}, {Layer: 22, Type: 23}, {Layer: 22, Type: 24},
	{Layer: 23, Type: 0}, {Layer: 23, Type: 28},
	{Layer: 25, Type: 0}, {Layer: 25, Type: 42}, {Layer: 25, Type: 43}, {Layer: 25, Type: 44},
	{Layer: 26, Type: 20}, {Layer: 26, Type: 21}, {Layer: 26, Type: 22},
	{Layer: 27, Type: 0},
	{Layer: 28, Type: 0}, {Layer: 28, Type: 28},
	{Layer: 29, Type: 20}, {Layer: 29, Type: 21}, {Layer: 29, Type: 22},
	{Layer: 30, Type: 0},
	{Layer: 31, Type: 20}, {Layer: 31, Type: 21}, {Layer: 31, Type: 22},
	{Layer: 32, Type: 0},
	{Layer: 33, Type: 24}, {Layer: 33, Type: 42}, {Layer: 33, Type: 43}, {Layer: 33, Type: 44},
	{Layer: 34, Type: 0}, {Layer: 34, Type: 28},
	{Layer: 35, Type: 0},
	{Layer: 36, Type: 0}, {Layer: 36, Type: 28},
	{Layer: 37, Type: 0},
	{Layer: 38, Type: 20}, {Layer: 38, Type: 21}, {Layer: 38, Type: 22},
	{Layer: 39, Type: 0},
	{Layer: 40, Type: 0},
	{Layer: 41, Type: 0}, {Layer: 41, Type: 28},
	{Layer: 43, Type: 0},
	{Layer: 44, Type: 0}, {Layer: 44, Type: 5}, {Layer: 44, Type: 16}, {Layer: 44, Type: 20}, {Layer: 44, Type: 42}, {Layer: 44, Type: 43},
	{Layer: 45, Type: 20}, {Layer: 45, Type: 21}, {Layer: 45, Type: 22},
	{Layer: 46, Type: 0},
	{Layer: 48, Type: 0},
	{Layer: 49, Type: 0},
	{Layer: 50, Type: 0},
	{Layer: 51, Type: 0}, {Layer: 51, Type: 28},
	{Layer: 53, Type: 42}, {Layer: 53, Type: 43}, {Layer: 53, Type: 44},
	{Layer: 56, Type: 0}, {Layer: 56, Type: 28},
	{Layer: 58, Type: 0},
	{Layer: 59, Type: 0}, {Layer: 59, Type: 28},
	{Layer: 61, Type: 20},
	{Layer: 62, Type: 20}, {Layer: 62, Type: 21}, {Layer: 62, Type: 22}, {Layer: 62, Type: 24},
	{Layer: 64, Type: 5}, {Layer: 64, Type: 13}, {Layer: 64, Type: 14}, {Layer: 64, Type: 16}, {Layer: 64, Type: 18}, {Layer: 64, Type: 20}, {Layer: 64, Type: 44}, {Layer: 64, Type: 59},
	{Layer: 65, Type: 4}, {Layer: 65, Type: 5}, {Layer: 65, Type: 6}, {Layer: 65, Type: 8}, {Layer: 65, Type: 13}, {Layer: 65, Type: 14}, {Layer: 65, Type: 16}, {Layer: 65, Type: 20}, {Layer: 65, Type: 23}, {Layer: 65, Type: 41},
	{Layer: 65, Type: 44}, {Layer: 65, Type: 48}, {Layer: 65, Type: 60},
	{Layer: 66, Type: 4}, {Layer: 66, Type: 5}, {Layer: 66, Type: 9}, {Layer: 66, Type: 13}, {Layer: 66, Type: 14}, {Layer: 66, Type: 15}, {Layer: 66, Type: 16}, {Layer: 66, Type: 20}, {Layer: 66, Type: 23}, {Layer: 66, Type: 25},
	{Layer: 66, Type: 41}, {Layer: 66, Type: 44}, {Layer: 66, Type: 58}, {Layer: 66, Type: 60}, {Layer: 66, Type: 83},
	{Layer: 67, Type: 4}, {Layer: 67, Type: 5}, {Layer: 67, Type: 10}, {Layer: 67, Type: 13}, {Layer: 67, Type: 14}, {Layer: 67, Type: 15}, {Layer: 67, Type: 16}, {Layer: 67, Type: 20}, {Layer: 67, Type: 23}, {Layer: 67, Type: 25},
	{Layer: 67, Type: 41}, {Layer: 67, Type: 44}, {Layer: 67, Type: 48}, {Layer: 67, Type: 60},
	{Layer: 68, Type: 4}, {Layer: 68, Type: 5}, {Layer: 68, Type: 10}, {Layer: 68, Type: 13}, {Layer: 68, Type: 14}, {Layer: 68, Type: 15}, {Layer: 68, Type: 16}, {Layer: 68, Type: 20}, {Layer: 68, Type: 23}, {Layer: 68, Type: 25},
	{Layer: 68, Type: 32}, {Layer: 68, Type: 33}, {Layer: 68, Type: 34}, {Layer: 68, Type: 35}, {Layer: 68, Type: 36}, {Layer: 68, Type: 37}, {Layer: 68, Type: 38}, {Layer: 68, Type: 39}, {Layer: 68, Type: 41},
	{Layer: 68, Type: 44}, {Layer: 68, Type: 48}, {Layer: 68, Type: 58}, {Layer: 68, Type: 60}, {Layer: 68, Type: 88}, {Layer: 68, Type: 89}, {Layer: 68, Type: 90}, {Layer: 68, Type: 91}, {Layer: 68, Type: 92},
	{Layer: 68, Type: 93},
	{Layer: 69, Type: 4}, {Layer: 69, Type: 5}, {Layer: 69, Type: 10}, {Layer: 69, Type: 13}, {Layer: 69, Type: 14}, {Layer: 69, Type: 15}, {Layer: 69, Type: 16}, {Layer: 69, Type: 20}, {Layer: 69, Type: 23}, {Layer: 69, Type: 25},
	{Layer: 69, Type: 32}, {Layer: 69, Type: 33}, {Layer: 69, Type: 34}, {Layer: 69, Type: 35}, {Layer: 69, Type: 36}, {Layer: 69, Type: 37}, {Layer: 69, Type: 38}, {Layer: 69, Type: 39}, {Layer: 69, Type: 41},
	{Layer: 69, Type: 44}, {Layer: 69, Type: 48}, {Layer: 69, Type: 58}, {Layer: 69, Type: 60}, {Layer: 69, Type: 88}, {Layer: 69, Type: 89}, {Layer: 69, Type: 90}, {Layer: 69, Type: 91}, {Layer: 69, Type: 92},
	{Layer: 69, Type: 93},
	{Layer: 70, Type: 4}, {Layer: 70, Type: 5}, {Layer: 70, Type: 10}, {Layer: 70, Type: 13}, {Layer: 70, Type: 14}, {Layer: 70, Type: 15}, {Layer: 70, Type: 16}, {Layer: 70, Type: 17}, {Layer: 70, Type: 20}, {Layer: 70, Type: 23},
	{Layer: 70, Type: 25}, {Layer: 70, Type: 32}, {Layer: 70, Type: 33}, {Layer: 70, Type: 34}, {Layer: 70, Type: 35}, {Layer: 70, Type: 36}, {Layer: 70, Type: 37}, {Layer: 70, Type: 38}, {Layer: 70, Type: 39},
	{Layer: 70, Type: 41}, {Layer: 70, Type: 44}, {Layer: 70, Type: 48}, {Layer: 70, Type: 60}, {Layer: 70, Type: 88}, {Layer: 70, Type: 89}, {Layer: 70, Type: 90}, {Layer: 70, Type: 91}, {Layer: 70, Type: 92},
	{Layer: 70, Type: 93},
	{Layer: 71, Type: 4}, {Layer: 71, Type: 5}, {Layer: 71, Type: 10}, {Layer: 71, Type: 13}, {Layer: 71, Type: 14}, {Layer: 71, Type: 15}, {Layer: 71, Type: 16}, {Layer: 71, Type: 17}, {Layer: 71, Type: 20}, {Layer: 71, Type: 23},
	{Layer: 71, Type: 25}, {Layer: 71, Type: 32}, {Layer: 71, Type: 33}, {Layer: 71, Type: 34}, {Layer: 71, Type: 35}, {Layer: 71, Type: 36}, {Layer: 71, Type: 37}, {Layer: 71, Type: 38}, {Layer: 71, Type: 39},
	{Layer: 71, Type: 41}, {Layer: 71, Type: 44}, {Layer: 71, Type: 48}, {Layer: 71, Type: 60}, {Layer: 71, Type: 88}, {Layer: 71, Type: 89}, {Layer: 71, Type: 90}, {Layer: 71, Type: 91}, {Layer: 71, Type: 92},
	{Layer: 71, Type: 93},
	{Layer: 72, Type: 4}, {Layer: 72, Type: 5}, {Layer: 72, Type: 10}, {Layer: 72, Type: 13}, {Layer: 72, Type: 14}, {Layer: 72, Type: 15}, {Layer: 72, Type: 16}, {Layer: 72, Type: 17}, {Layer: 72, Type: 20}, {Layer: 72, Type: 23},
	{Layer: 72, Type: 25}, {Layer: 72, Type: 32}, {Layer: 72, Type: 33}, {Layer: 72, Type: 34}, {Layer: 72, Type: 35}, {Layer: 72, Type: 36}, {Layer: 72, Type: 37}, {Layer: 72, Type: 38}, {Layer: 72, Type: 39},
	{Layer: 72, Type: 88}, {Layer: 72, Type: 89}, {Layer: 72, Type: 90}, {Layer: 72, Type: 91}, {Layer: 72, Type: 92}, {Layer: 72, Type: 93},
	{Layer: 74, Type: 5}, {Layer: 74, Type: 13}, {Layer: 74, Type: 14}, {Layer: 74, Type: 15}, {Layer: 74, Type: 16}, {Layer: 74, Type: 20}, {Layer: 74, Type: 21}, {Layer: 74, Type: 22}, {Layer: 74, Type: 88}, {Layer: 74, Type: 89},
	{Layer: 74, Type: 90}, {Layer: 74, Type: 91}, {Layer: 74, Type: 92}, {Layer: 74, Type: 93},
	{Layer: 75, Type: 20},
	{Layer: 76, Type: 5}, {Layer: 76, Type: 16}, {Layer: 76, Type: 20}, {Layer: 76, Type: 44},
	{Layer: 77, Type: 20},
	{Layer: 78, Type: 44},
	{Layer: 79, Type: 20},
	{Layer: 80, Type: 20},
	{Layer: 81, Type: 1}, {Layer: 81, Type: 2}, {Layer: 81, Type: 3}, {Layer: 81, Type: 4}, {Layer: 81, Type: 6}, {Layer: 81, Type: 7}, {Layer: 81, Type: 8}, {Layer: 81, Type: 10}, {Layer: 81, Type: 11}, {Layer: 81, Type: 12},
	{Layer: 81, Type: 13}, {Layer: 81, Type: 14}, {Layer: 81, Type: 15}, {Layer: 81, Type: 17}, {Layer: 81, Type: 19}, {Layer: 81, Type: 20}, {Layer: 81, Type: 23}, {Layer: 81, Type: 27}, {Layer: 81, Type: 50},
	{Layer: 81, Type: 51}, {Layer: 81, Type: 52}, {Layer: 81, Type: 53}, {Layer: 81, Type: 54}, {Layer: 81, Type: 57}, {Layer: 81, Type: 60}, {Layer: 81, Type: 63}, {Layer: 81, Type: 79}, {Layer: 81, Type: 81},
	{Layer: 81, Type: 101}, {Layer: 81, Type: 125},
	{Layer: 82, Type: 5}, {Layer: 82, Type: 20}, {Layer: 82, Type: 24}, {Layer: 82, Type: 25}, {Layer: 82, Type: 26}, {Layer: 82, Type: 27}, {Layer: 82, Type: 28}, {Layer: 82, Type: 44}, {Layer: 82, Type: 59}, {Layer: 82, Type: 64},
	{Layer: 83, Type: 44},
	{Layer: 84, Type: 23}, {Layer: 84, Type: 44},
	{Layer: 85, Type: 44},
	{Layer: 86, Type: 20},
	{Layer: 87, Type: 42}, {Layer: 87, Type: 43}, {Layer: 87, Type: 44},
	{Layer: 88, Type: 0}, {Layer: 88, Type: 44},
	{Layer: 89, Type: 32}, {Layer: 89, Type: 33}, {Layer: 89, Type: 34}, {Layer: 89, Type: 35}, {Layer: 89, Type: 36}, {Layer: 89, Type: 37}, {Layer: 89, Type: 38}, {Layer: 89, Type: 39}, {Layer: 89, Type: 44},
	{Layer: 90, Type: 4}, {Layer: 90, Type: 20},
	{Layer: 91, Type: 44},
	{Layer: 92, Type: 44},
	{Layer: 93, Type: 0}, {Layer: 93, Type: 44},
	{Layer: 94, Type: 0}, {Layer: 94, Type: 20},
	{Layer: 95, Type: 20},
	{Layer: 96, Type: 0}, {Layer: 96, Type: 20}, {Layer: 96, Type: 21}, {Layer: 96, Type: 22}, {Layer: 96, Type: 44},
	{Layer: 97, Type: 0}, {Layer: 97, Type: 42}, {Layer: 97, Type: 43}, {Layer: 97, Type: 44},
	{Layer: 98, Type: 0}, {Layer: 98, Type: 42}, {Layer: 98, Type: 43}, {Layer: 98, Type: 44},
	{Layer: 99, Type: 0},
	{Layer: 100, Type: 0},
	{Layer: 101, Type: 0}, {Layer: 101, Type: 42}, {Layer: 101, Type: 43}, {Layer: 101, Type: 44},
	{Layer: 104, Type: 42}, {Layer: 104, Type: 43}, {Layer: 104, Type: 44},
	{Layer: 105, Type: 20}, {Layer: 105, Type: 21}, {Layer: 105, Type: 22}, {Layer: 105, Type: 42}, {Layer: 105, Type: 43}, {Layer: 105, Type: 44}, {Layer: 105, Type: 52},
	{Layer: 106, Type: 42}, {Layer: 106, Type: 43}, {Layer: 106, Type: 44},
	{Layer: 107, Type: 20}, {Layer: 107, Type: 21}, {Layer: 107, Type: 22}, {Layer: 107, Type: 24},
	{Layer: 108, Type: 20}, {Layer: 108, Type: 21}, {Layer: 108, Type: 22},
	{Layer: 109, Type: 42}, {Layer: 109, Type: 43}, {Layer: 109, Type: 44},
	{Layer: 110, Type: 20}, {Layer: 110, Type: 21}, {Layer: 110, Type: 22},
	{Layer: 112, Type: 4}, {Layer: 112, Type: 20}, {Layer: 112, Type: 21}, {Layer: 112, Type: 22}, {Layer: 112, Type: 42}, {Layer: 112, Type: 43},
	{Layer: 115, Type: 42}, {Layer: 115, Type: 43}, {Layer: 115, Type: 44},
	{Layer: 117, Type: 4}, {Layer: 117, Type: 20}, {Layer: 117, Type: 21}, {Layer: 117, Type: 22},
	{Layer: 122, Type: 5}, {Layer: 122, Type: 16},
	{Layer: 124, Type: 40},
	{Layer: 125, Type: 20}, {Layer: 125, Type: 44},
	{Layer: 127, Type: 21}, {Layer: 127, Type: 22},
	{Layer: 201, Type: 20},
	{Layer: 235, Type: 0}, {Layer: 235, Type: 4}, {Layer: 235, Type: 250}, {Layer: 235, Type: 252},
	{Layer: 236, Type: 0},
}...)

// ValidLayers returns a copy of the allow-list.
func ValidLayers() gds.TagSet {
	return validLayers.Union(nil)
}
