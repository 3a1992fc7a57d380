package boundary

import "github.com/handshou/rainmap-go/internal/geo"

// Singapore is a coarse approximation of the Singapore coastline, traced
// clockwise from Tuas. The resolution is deliberately low: the ring only
// needs to clip a heatmap grid, not draw a map.
var Singapore = MustNew([]geo.Point{
	{Lat: 1.2640, Lon: 103.6360},
	{Lat: 1.2870, Lon: 103.6070},
	{Lat: 1.3080, Lon: 103.6180},
	{Lat: 1.3240, Lon: 103.6330},
	{Lat: 1.3480, Lon: 103.6480},
	{Lat: 1.3820, Lon: 103.6560},
	{Lat: 1.4150, Lon: 103.6720},
	{Lat: 1.4380, Lon: 103.6830},
	{Lat: 1.4480, Lon: 103.7180},
	{Lat: 1.4420, Lon: 103.7450},
	{Lat: 1.4570, Lon: 103.7700},
	{Lat: 1.4510, Lon: 103.7970},
	{Lat: 1.4660, Lon: 103.8180},
	{Lat: 1.4620, Lon: 103.8430},
	{Lat: 1.4480, Lon: 103.8670},
	{Lat: 1.4360, Lon: 103.9030},
	{Lat: 1.4220, Lon: 103.9350},
	{Lat: 1.4130, Lon: 103.9630},
	{Lat: 1.4020, Lon: 103.9860},
	{Lat: 1.3920, Lon: 104.0130},
	{Lat: 1.3740, Lon: 104.0320},
	{Lat: 1.3570, Lon: 104.0410},
	{Lat: 1.3450, Lon: 104.0260},
	{Lat: 1.3270, Lon: 103.9930},
	{Lat: 1.3080, Lon: 103.9550},
	{Lat: 1.2960, Lon: 103.9200},
	{Lat: 1.2920, Lon: 103.8840},
	{Lat: 1.2710, Lon: 103.8630},
	{Lat: 1.2580, Lon: 103.8390},
	{Lat: 1.2390, Lon: 103.8260},
	{Lat: 1.2420, Lon: 103.8030},
	{Lat: 1.2560, Lon: 103.7900},
	{Lat: 1.2650, Lon: 103.7800},
	{Lat: 1.2760, Lon: 103.7550},
	{Lat: 1.2880, Lon: 103.7300},
	{Lat: 1.2760, Lon: 103.7030},
	{Lat: 1.2580, Lon: 103.6780},
	{Lat: 1.2470, Lon: 103.6550},
	{Lat: 1.2530, Lon: 103.6370},
	{Lat: 1.2640, Lon: 103.6360},
})
