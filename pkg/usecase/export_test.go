package usecase

const LocalConfigFileForTest = localConfigFile
