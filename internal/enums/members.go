package enums

var shapeTypes = []string{
	"Rectangle", "RoundCornerRectangle", "OneSnipCornerRectangle", "TwoSamesideSnipCornerRectangle",
	"TwoDiagonalSnipCornerRectangle", "OneSnipOneRoundCornerRectangle", "OneRoundCornerRectangle",
	"TwoSamesideRoundCornerRectangle", "TwoDiagonalRoundCornerRectangle", "Ellipse", "Triangle",
	"RightTriangle", "Parallelogram", "Trapezoid", "Diamond", "RegularPentagon", "Hexagon", "Heptagon",
	"Octagon", "Decagon", "Dodecagon", "Pie", "Chord", "Teardrop", "Frame", "HalfFrame", "Corner",
	"DiagonalStripe", "Plus", "Plaque", "Can", "Cube", "Bevel", "Donut", "NoSymbol", "BlockArc",
	"FoldedCorner", "SmileyFace", "Heart", "LightningBolt", "Sun", "Moon", "Cloud", "Arc",
	"DoubleBracket", "DoubleBrace", "LeftBracket", "RightBracket", "LeftBrace", "RightBrace",
	"Line", "RightArrow", "LeftArrow", "UpArrow", "DownArrow", "LeftRightArrow", "UpDownArrow",
	"QuadArrow", "LeftRightUpArrow", "BentArrow", "UTurnArrow", "LeftUpArrow", "BentUpArrow",
	"CurvedRightArrow", "CurvedLeftArrow", "CurvedUpArrow", "CurvedDownArrow", "StripedRightArrow",
	"NotchedRightArrow", "Pentagon", "Chevron", "RightArrowCallout", "LeftArrowCallout",
	"UpArrowCallout", "DownArrowCallout", "LeftRightArrowCallout", "QuadArrowCallout",
	"CircularArrow", "MathPlus", "MathMinus", "MathMultiply", "MathDivision", "MathEqual",
	"MathNotEqual", "FlowChartProcess", "FlowChartAlternateProcess", "FlowChartDecision",
	"FlowChartData", "FlowChartPredefinedProcess", "FlowChartInternalStorage", "FlowChartDocument",
	"FlowChartMultiDocument", "FlowChartTerminator", "FlowChartPreparation", "FlowChartManualInput",
	"FlowChartManualOperation", "FlowChartConnector", "FlowChartOffPageConnector", "FlowChartCard",
	"FlowChartPunchedTape", "FlowChartSummingJunction", "FlowChartOr", "FlowChartCollate",
	"FlowChartSort", "FlowChartExtract", "FlowChartMerge", "FlowChartOnlineStorage",
	"FlowChartDelay", "FlowChartMagneticTape", "FlowChartMagneticDisk", "FlowChartMagneticDrum",
	"FlowChartDisplay", "Explosion1", "Explosion2", "FourPointedStar", "FivePointedStar",
	"SixPointedStar", "SevenPointedStar", "EightPointedStar", "TenPointedStar", "TwelvePointedStar",
	"SixteenPointedStar", "TwentyFourPointedStar", "ThirtyTwoPointedStar", "UpRibbon", "DownRibbon",
	"CurvedUpRibbon", "CurvedDownRibbon", "VerticalScroll", "HorizontalScroll", "Wave", "DoubleWave",
	"RectangularCallout", "RoundedRectangularCallout", "OvalCallout", "CloudCallout", "LineCallout1",
	"LineCallout2", "LineCallout3", "LineCallout4", "LineCallout1AccentBar", "LineCallout2AccentBar",
	"LineCallout3AccentBar", "LineCallout4AccentBar", "LineCallout1NoBorder", "LineCallout2NoBorder",
	"LineCallout3NoBorder", "LineCallout4NoBorder", "LineCallout1BorderAndAccentBar",
	"LineCallout2BorderAndAccentBar", "LineCallout3BorderAndAccentBar", "LineCallout4BorderAndAccentBar",
	"ActionButtonBackorPrevious", "ActionButtonForwardorNext", "ActionButtonBeginning",
	"ActionButtonEnd", "ActionButtonHome", "ActionButtonInformation", "ActionButtonReturn",
	"ActionButtonMovie", "ActionButtonDocument", "ActionButtonSound", "ActionButtonHelp",
	"ActionButtonBlank", "Gear6", "Gear9", "Funnel", "PieWedge", "LeftCircularArrow",
	"LeftRightCircularArrow", "SwooshArrow", "LeftRightRibbon", "TextNoShape", "ChartPlus",
	"ChartStar", "ChartX", "Custom",
}

var chartTypes = []string{
	"ClusteredColumn", "StackedColumn", "PercentStackedColumn", "Column3DClustered",
	"Column3DStacked", "Column3DPercentStacked", "Column3D", "Cylinder3DClustered",
	"Cylinder3DStacked", "Cylinder3DPercentStacked", "Cylinder3DClustered3D", "Cone3DClustered",
	"Cone3DStacked", "Cone3DPercentStacked", "Cone3D", "Pyramid3DClustered", "Pyramid3DStacked",
	"Pyramid3DPercentStacked", "Pyramid3D", "Line", "LineStacked", "LinePercentStacked",
	"LineMarkers", "LineMarkersStacked", "LineMarkersPercentStacked", "Line3D", "Pie", "Pie3D",
	"PieOfPie", "PieExploded", "Pie3DExploded", "PieBar", "Bar100PercentStackedWithCylinder",
	"Bar100PercentStackedWithCone", "Bar100PercentStackedWithPyramid", "BarClustered",
	"BarStacked", "Bar100PercentStacked", "Bar3DClustered", "Bar3DStacked", "Bar3DPercentStacked",
	"CylinderBarClustered", "CylinderBarStacked", "ConeBarClustered", "ConeBarStacked",
	"PyramidBarClustered", "PyramidBarStacked", "Area", "AreaStacked", "Area100PercentStacked",
	"Area3D", "Area3DStacked", "Area3DPercentStacked", "ScatterMarkers", "ScatterSmoothLinesAndMarkers",
	"ScatterSmoothLines", "ScatterStraightLinesAndMarkers", "ScatterStraightLines", "HighLowClose",
	"OpenHighLowClose", "VolumeHighLowClose", "VolumeOpenHighLowClose", "Surface3D",
	"WireframeSurface3D", "Contour", "WireframeContour", "Doughnut", "DoughnutExploded",
	"Bubble", "Bubble3D", "Radar", "RadarMarkers", "FilledRadar", "TreeMap", "SunBurst",
	"Histogram", "Pareto", "BoxAndWhisker", "WaterFall", "Funnel",
}

var smartArtLayouts = []string{
	"BasicBlockList", "AlternatingHexagons", "PictureCaptionList", "LinedList", "VerticalBulletList",
	"VerticalBoxList", "HorizontalBulletList", "SquareAccentList", "PictureAccentList",
	"BendingPictureAccentList", "StackedList", "IncreasingCircleProcess", "PieProcess",
	"DetailedProcess", "GroupedList", "HorizontalPictureList", "ContinuousPictureList",
	"PictureStrips", "VerticalPictureList", "AlternatingPictureBlocks", "VerticalPictureAccentList",
	"TitledPictureAccentList", "VerticalBlockList", "VerticalChevronList", "VerticalAccentList",
	"VerticalArrowList", "TrapezoidList", "DescendingBlockList", "TableList", "SegmentedProcess",
	"VerticalCurvedList", "PyramidList", "TargetList", "HierarchyList", "VerticalCircleList",
	"TableHierarchy", "BasicProcess", "StepUpProcess", "StepDownProcess", "AccentProcess",
	"AlternatingFlow", "ContinuousBlockProcess", "IncreasingArrowsProcess", "ContinuousArrowProcess",
	"ProcessArrows", "CircleAccentTimeLine", "BasicTimeline", "BasicChevronProcess",
	"ClosedChevronProcess", "ChevronList", "SubStepProcess", "PhasedProcess", "RandomToResultProcess",
	"StaggeredProcess", "ProcessList", "CircleArrowProcess", "BasicBendingProcess",
	"VerticalBendingProcess", "AscendingPictureAccentProcess", "UpwardArrow", "DescendingProcess",
	"CircularBendingProcess", "Equation", "VerticalEquation", "Funnel", "Gear", "ArrowRibbon",
	"OpposingArrows", "ConvergingArrows", "DivergingArrows", "BasicCycle", "TextCycle",
	"BlockCycle", "NondirectionalCycle", "ContinuousCycle", "MultiDirectionalCycle",
	"SegmentedCycle", "BasicPie", "RadialCycle", "BasicRadial", "DivergingRadial", "RadialVenn",
	"CycleMatrix", "OrganizationChart", "Hierarchy", "LabeledHierarchy", "HorizontalHierarchy",
	"HorizontalLabeledHierarchy", "Balance", "CounterBalanceArrows", "SegmentedPyramid",
	"NestedTarget", "ConvergingRadial", "RadialList", "BasicTarget", "BasicVenn", "LinearVenn",
	"StackedVenn", "BasicMatrix", "TitledMatrix", "GridMatrix", "BasicPyramid", "InvertedPyramid",
	"Custom",
}

var textAlignments = []string{"None", "Left", "Center", "Right", "Justify", "Dist"}

var textAutofits = []string{"UnDefined", "None", "Normal", "Shape"}

var verticalTexts = []string{
	"None", "Horizontal", "Vertical", "Vertical270", "WordArtVertical", "EastAsianVertical",
	"MongolianVertical", "WordArtVerticalRightToLeft",
}
